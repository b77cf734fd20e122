package jsonline

import (
	"context"
	"fmt"

	"github.com/msomdec/weblog/internal/domain"
)

// GalleryRepository implements domain.GalleryRepository over gallery.txt.
type GalleryRepository struct {
	table *table[domain.GalleryItem]
}

// NewGalleryRepository creates a file-backed GalleryRepository.
func NewGalleryRepository(s *Store) *GalleryRepository {
	return &GalleryRepository{table: newTable[domain.GalleryItem](s.dataFile(galleryFile))}
}

func (r *GalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	if err := r.table.append(*item); err != nil {
		return fmt.Errorf("append gallery item: %w", err)
	}
	return nil
}

// ListNewest returns one page of gallery items sorted newest first.
func (r *GalleryRepository) ListNewest(ctx context.Context, limit, offset int) ([]domain.GalleryItem, error) {
	items, err := r.table.scanAll()
	if err != nil {
		return nil, fmt.Errorf("scan gallery: %w", err)
	}
	SortNewestFirst(items, func(i domain.GalleryItem) string { return i.UploadDate })
	return Paginate(items, limit, offset), nil
}

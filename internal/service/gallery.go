package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/weblog/internal/domain"
)

const maxUploadSize = 5 * 1024 * 1024 // 5MB

// GalleryService validates image uploads, stores the bytes, and
// records gallery entries.
type GalleryService struct {
	gallery domain.GalleryRepository
	files   domain.FileStore
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(gallery domain.GalleryRepository, files domain.FileStore) *GalleryService {
	return &GalleryService{gallery: gallery, files: files}
}

// Upload validates and stores an image, then records it in the
// gallery. uploadedBy is the uploader's display name; pass "" for
// visitors, which is recorded as "anonymous".
func (s *GalleryService) Upload(ctx context.Context, uploadedBy, filename, contentType string, data []byte) (*domain.GalleryItem, error) {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif":
	default:
		return nil, fmt.Errorf("%w: only JPEG, PNG and GIF images are accepted", domain.ErrInvalidInput)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", domain.ErrInvalidInput)
	}
	if len(data) > maxUploadSize {
		return nil, fmt.Errorf("%w: image exceeds 5MB limit", domain.ErrInvalidInput)
	}

	if uploadedBy == "" {
		uploadedBy = "anonymous"
	}

	key := uuid.NewString() + "_" + filepath.Base(filename)
	if err := s.files.Save(ctx, key, data); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	item := &domain.GalleryItem{
		Filename:   key,
		UploadedBy: uploadedBy,
		UploadDate: domain.FormatTime(time.Now()),
	}
	if err := s.gallery.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("record gallery item: %w", err)
	}
	return item, nil
}

// ListNewest returns one page of gallery items, newest first.
func (s *GalleryService) ListNewest(ctx context.Context, limit, offset int) ([]domain.GalleryItem, error) {
	return s.gallery.ListNewest(ctx, limit, offset)
}

// GetImage returns the stored bytes for a gallery filename.
func (s *GalleryService) GetImage(ctx context.Context, filename string) ([]byte, error) {
	return s.files.Get(ctx, filename)
}

package domain

import "context"

// GalleryItem records one uploaded image. UploadedBy is the uploader's
// display name, or "anonymous" when the upload came from a visitor.
type GalleryItem struct {
	Filename   string `json:"filename"`
	UploadedBy string `json:"uploaded_by"`
	UploadDate string `json:"upload_date"`
}

// GalleryRepository defines persistence operations for gallery items.
type GalleryRepository interface {
	Create(ctx context.Context, item *GalleryItem) error
	ListNewest(ctx context.Context, limit, offset int) ([]GalleryItem, error)
}

// FileStore persists uploaded file bytes under an opaque key.
type FileStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

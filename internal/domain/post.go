package domain

import "context"

// Post is a blog entry. The author name fields are a snapshot taken at
// creation time; they are not re-synced if the user later changes
// their name.
type Post struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	AuthorID        string `json:"author_id"`
	AuthorFirstName string `json:"author_firstname"`
	AuthorLastName  string `json:"author_lastname"`
	CreatedAt       string `json:"created_at"`
	ImagePath       string `json:"image_path,omitempty"`
}

// PostRepository defines persistence operations for posts. Posts are
// append-only and immutable once written.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	ListNewest(ctx context.Context, limit, offset int) ([]Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]Post, error)
	Count(ctx context.Context) (int, error)
}

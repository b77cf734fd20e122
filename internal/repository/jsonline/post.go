package jsonline

import (
	"context"
	"fmt"

	"github.com/msomdec/weblog/internal/domain"
)

// PostRepository implements domain.PostRepository over posts.txt.
type PostRepository struct {
	table *table[domain.Post]
}

// NewPostRepository creates a file-backed PostRepository.
func NewPostRepository(s *Store) *PostRepository {
	return &PostRepository{table: newTable[domain.Post](s.dataFile(postsFile))}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	if err := r.table.append(*post); err != nil {
		return fmt.Errorf("append post: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	posts, err := r.table.scanAll()
	if err != nil {
		return nil, fmt.Errorf("scan posts: %w", err)
	}
	for i := range posts {
		if posts[i].ID == id {
			p := posts[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListNewest returns one page of posts sorted newest first.
func (r *PostRepository) ListNewest(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	posts, err := r.table.scanAll()
	if err != nil {
		return nil, fmt.Errorf("scan posts: %w", err)
	}
	SortNewestFirst(posts, func(p domain.Post) string { return p.CreatedAt })
	return Paginate(posts, limit, offset), nil
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	posts, err := r.table.scanAll()
	if err != nil {
		return nil, fmt.Errorf("scan posts: %w", err)
	}
	var byAuthor []domain.Post
	for _, p := range posts {
		if p.AuthorID == authorID {
			byAuthor = append(byAuthor, p)
		}
	}
	SortNewestFirst(byAuthor, func(p domain.Post) string { return p.CreatedAt })
	return byAuthor, nil
}

func (r *PostRepository) Count(ctx context.Context) (int, error) {
	posts, err := r.table.scanAll()
	if err != nil {
		return 0, fmt.Errorf("scan posts: %w", err)
	}
	return len(posts), nil
}

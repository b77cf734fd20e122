package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/weblog/internal/domain"
)

// PostService handles post creation and listing.
type PostService struct {
	posts domain.PostRepository
	users domain.UserRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository, users domain.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create appends a new post with the author's name captured at
// creation time. The snapshot is deliberately not kept in sync with
// later name changes.
func (s *PostService) Create(ctx context.Context, authorID, title, content, imagePath string) (*domain.Post, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown author", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("get author: %w", err)
	}

	post := &domain.Post{
		ID:              uuid.NewString(),
		Title:           title,
		Content:         content,
		AuthorID:        author.ID,
		AuthorFirstName: author.FirstName,
		AuthorLastName:  author.LastName,
		CreatedAt:       domain.FormatTime(time.Now()),
		ImagePath:       imagePath,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// GetByID returns a post by ID.
func (s *PostService) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// ListNewest returns one page of posts, newest first.
func (s *PostService) ListNewest(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	return s.posts.ListNewest(ctx, limit, offset)
}

// ListByAuthor returns all posts by one author, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID)
}

// Count returns the total number of posts.
func (s *PostService) Count(ctx context.Context) (int, error) {
	return s.posts.Count(ctx)
}

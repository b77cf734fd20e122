package service

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/weblog/internal/domain"
)

// ContactService records and lists contact form submissions.
type ContactService struct {
	messages domain.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(messages domain.ContactRepository) *ContactService {
	return &ContactService{messages: messages}
}

// Submit records one contact form submission.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email, and message are required", domain.ErrInvalidInput)
	}

	msg := &domain.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
		Date:    domain.FormatTime(time.Now()),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("record contact message: %w", err)
	}
	return msg, nil
}

// ListNewest returns one page of contact messages, newest first.
func (s *ContactService) ListNewest(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	return s.messages.ListNewest(ctx, limit, offset)
}

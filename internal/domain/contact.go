package domain

import "context"

// ContactMessage is one contact form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	ListNewest(ctx context.Context, limit, offset int) ([]ContactMessage, error)
}

package jsonline

import (
	"context"
	"fmt"

	"github.com/msomdec/weblog/internal/domain"
)

// ContactRepository implements domain.ContactRepository over
// contact_messages.txt.
type ContactRepository struct {
	table *table[domain.ContactMessage]
}

// NewContactRepository creates a file-backed ContactRepository.
func NewContactRepository(s *Store) *ContactRepository {
	return &ContactRepository{table: newTable[domain.ContactMessage](s.dataFile(contactsFile))}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	if err := r.table.append(*msg); err != nil {
		return fmt.Errorf("append contact message: %w", err)
	}
	return nil
}

// ListNewest returns one page of contact messages sorted newest first.
func (r *ContactRepository) ListNewest(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	msgs, err := r.table.scanAll()
	if err != nil {
		return nil, fmt.Errorf("scan contact messages: %w", err)
	}
	SortNewestFirst(msgs, func(m domain.ContactMessage) string { return m.Date })
	return Paginate(msgs, limit, offset), nil
}

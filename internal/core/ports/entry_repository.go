package ports

import (
	"context"

	"github.com/personal-diary/diary-api/internal/core/domain"
)

// EntryRepository defines persistence operations for diary entries. Finds and
// deletes are always filtered by ownerID; an entry belonging to another user
// is indistinguishable from a missing one (domain.ErrEntryNotFound).
type EntryRepository interface {
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	FindByID(ctx context.Context, id, ownerID string) (*domain.Entry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Entry, error)
	Delete(ctx context.Context, id, ownerID string) error
}

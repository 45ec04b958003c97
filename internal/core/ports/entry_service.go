package ports

import (
	"context"

	"github.com/personal-diary/diary-api/internal/core/domain"
)

// CreateEntryInput is the DTO passed from the transport layer to EntryService.
type CreateEntryInput struct {
	OwnerID string
	Title   string
	Content string
}

// EntryService exposes owner-scoped diary entry operations. OwnerID comes
// from the resolved identity, never from the request body.
type EntryService interface {
	Create(ctx context.Context, in CreateEntryInput) (*domain.Entry, error)
	List(ctx context.Context, ownerID string) ([]*domain.Entry, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Entry, error)
	Delete(ctx context.Context, id, ownerID string) error
}

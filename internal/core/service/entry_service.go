package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/personal-diary/diary-api/internal/core/domain"
	"github.com/personal-diary/diary-api/internal/core/ports"
)

// EntryService implements owner-scoped diary entry CRUD. Scoping is enforced
// at the repository level: every query carries the owner id, so another
// user's entry looks exactly like a missing one.
type EntryService struct {
	repo   ports.EntryRepository
	logger zerolog.Logger
}

func NewEntryService(repo ports.EntryRepository, logger zerolog.Logger) *EntryService {
	return &EntryService{repo: repo, logger: logger}
}

func (s *EntryService) Create(ctx context.Context, in ports.CreateEntryInput) (*domain.Entry, error) {
	if in.OwnerID == "" {
		return nil, domain.ErrForbidden
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, domain.ErrInvalidEntry
	}

	now := time.Now().UTC()
	entry, err := s.repo.Create(ctx, &domain.Entry{
		OwnerID:   in.OwnerID,
		Title:     strings.TrimSpace(in.Title),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", in.OwnerID).Msg("failed to create entry")
		return nil, err
	}

	s.logger.Info().Str("entry_id", entry.ID).Str("owner_id", entry.OwnerID).Msg("entry created")
	return entry, nil
}

func (s *EntryService) List(ctx context.Context, ownerID string) ([]*domain.Entry, error) {
	if ownerID == "" {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *EntryService) Get(ctx context.Context, id, ownerID string) (*domain.Entry, error) {
	if ownerID == "" {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id, ownerID)
}

func (s *EntryService) Delete(ctx context.Context, id, ownerID string) error {
	if ownerID == "" {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id, ownerID)
}

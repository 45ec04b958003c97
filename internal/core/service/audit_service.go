package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/personal-diary/diary-api/internal/core/domain"
	"github.com/personal-diary/diary-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that appends events to the audit
// trail. Persistence failures are surfaced to the dispatcher for logging but
// never reach the request path.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.InsertEvent(ctx, &event); err != nil {
		return fmt.Errorf("record auth event: %w", err)
	}

	s.log.Debug().
		Str("email", event.Email).
		Str("kind", string(event.Kind)).
		Msg("auth event recorded")

	return nil
}

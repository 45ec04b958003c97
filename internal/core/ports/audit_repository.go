package ports

import (
	"context"

	"github.com/personal-diary/diary-api/internal/core/domain"
)

// AuditRepository appends authentication events to the audit trail.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuthEvent) error
}

package ports

import (
	"context"

	"github.com/personal-diary/diary-api/internal/core/domain"
)

// AuditService records authentication events. Implementations must be safe to
// call from dispatcher workers.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

package ports

import (
	"context"

	"github.com/personal-diary/diary-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must enforce email uniqueness atomically and return
// domain.ErrEmailTaken on violation, so concurrent registrations of the same
// email cannot both succeed.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

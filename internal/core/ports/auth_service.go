package ports

import (
	"context"

	"github.com/personal-diary/diary-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a password-based account.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginInput carries an email/password pair.
type LoginInput struct {
	Email    string
	Password string
}

// AuthService implements registration, login, and bearer-token identity
// resolution.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, in LoginInput) (string, *domain.User, error)
	// Resolve returns the account a verified token subject points to.
	// Whatever the failure (expired, tampered, deleted account), callers get
	// domain.ErrInvalidCredential.
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/personal-diary/diary-api/internal/core/domain"
	"github.com/personal-diary/diary-api/internal/core/ports"
)

// LoginLimiter throttles password-login attempts per normalized email.
// A Redis-backed implementation lives in infrastructure.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted right now.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure counts a failed attempt against the email.
	RecordFailure(ctx context.Context, email string) error
}

// AuthEventSink receives audit events without blocking the request path.
type AuthEventSink interface {
	Enqueue(event domain.AuthEvent)
}

// PasswordPolicy validates a candidate password at registration time.
type PasswordPolicy func(password string) error

// AuthService implements registration, login, and identity resolution.
// Every protected operation goes through Resolve before touching owned data.
type AuthService struct {
	repo    ports.UserRepository
	tokens  *TokenIssuer
	limiter LoginLimiter  // nil = unlimited
	audit   AuthEventSink // nil = no audit trail
	policy  PasswordPolicy
	logger  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenIssuer, limiter LoginLimiter, audit AuthEventSink, logger zerolog.Logger) *AuthService {
	return &AuthService{
		repo:    repo,
		tokens:  tokens,
		limiter: limiter,
		audit:   audit,
		policy:  defaultPasswordPolicy,
		logger:  logger,
	}
}

// SetPasswordPolicy replaces the default minimum-length policy.
func (s *AuthService) SetPasswordPolicy(p PasswordPolicy) {
	if p != nil {
		s.policy = p
	}
}

// NormalizeEmail trims whitespace and lowercases, so lookups and the unique
// index see one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func defaultPasswordPolicy(password string) error {
	if len(password) < MinPasswordLength {
		return domain.ErrWeakPassword
	}
	return nil
}

// Register creates a password-based account and issues a session token.
//
// The pre-check and the insert are not atomic together; the unique index on
// email is. A duplicate-key error from the store during a concurrent
// registration is treated exactly like the pre-check hit.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	email := NormalizeEmail(in.Email)
	if email == "" {
		return "", nil, domain.ErrInvalidEmail
	}
	if err := s.policy(in.Password); err != nil {
		return "", nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:       email,
		DisplayName: strings.TrimSpace(in.DisplayName),
		Credential:  domain.PasswordCredential{Hash: hash},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.emit(domain.AuthEvent{Email: email, UserID: created.ID, Kind: domain.AuthRegistered, Timestamp: now})
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")

	return token, created, nil
}

// Login authenticates an email/password pair and issues a session token.
// ErrUserNotFound, ErrPasswordLoginUnavailable, and ErrInvalidPassword are
// distinct here for logging and auditing; the boundary collapses all three
// into one generic message.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (string, *domain.User, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidPassword
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			// Limiter outage must not take logins down with it.
			s.logger.Warn().Err(err).Msg("login limiter unavailable, failing open")
		} else if !allowed {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.loginFailed(ctx, email, "")
		}
		return "", nil, err
	}

	cred, ok := user.Credential.(domain.PasswordCredential)
	if !ok {
		s.loginFailed(ctx, email, user.ID)
		return "", nil, domain.ErrPasswordLoginUnavailable
	}

	if !CheckPassword(in.Password, cred.Hash) {
		s.loginFailed(ctx, email, user.ID)
		return "", nil, domain.ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.emit(domain.AuthEvent{Email: email, UserID: user.ID, Kind: domain.AuthLoginOK, Timestamp: time.Now().UTC()})
	return token, user, nil
}

// Resolve verifies a bearer token and returns the account it points to. Any
// failure, including a subject deleted after issuance, surfaces as
// ErrInvalidCredential so the caller learns nothing about the cause.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidCredential
	}

	user, err := s.repo.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredential
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) loginFailed(ctx context.Context, email, userID string) {
	if s.limiter != nil {
		if err := s.limiter.RecordFailure(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record login attempt")
		}
	}
	s.emit(domain.AuthEvent{Email: email, UserID: userID, Kind: domain.AuthLoginFailed, Timestamp: time.Now().UTC()})
}

func (s *AuthService) emit(event domain.AuthEvent) {
	if s.audit != nil {
		s.audit.Enqueue(event)
	}
}

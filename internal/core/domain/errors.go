package domain

import "errors"

var (
	// ErrEmailTaken is returned when registering an email that already has an
	// account, whether detected by the pre-check or by the store's unique
	// index during a concurrent registration.
	ErrEmailTaken = errors.New("email already registered")

	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidEmail is returned at registration when the email is empty
	// after normalization.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrPasswordLoginUnavailable is returned when the account exists but was
	// created through an external identity provider and holds no password.
	ErrPasswordLoginUnavailable = errors.New("password login unavailable")

	ErrInvalidPassword = errors.New("invalid password")

	// ErrWeakPassword is returned at registration when the candidate password
	// fails the configured policy.
	ErrWeakPassword = errors.New("password does not meet requirements")

	// ErrInvalidCredential covers every bearer-token rejection: malformed,
	// bad signature, expired, or a subject that no longer exists. The caller
	// must not be able to tell which.
	ErrInvalidCredential = errors.New("invalid credential")

	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidEntry  = errors.New("invalid entry")
	ErrForbidden     = errors.New("access forbidden")

	// ErrTooManyAttempts is returned when the login limiter blocks an email.
	ErrTooManyAttempts = errors.New("too many login attempts")

	// ErrStoreUnavailable marks a transient persistence failure; callers may
	// retry, the core does not.
	ErrStoreUnavailable = errors.New("store unavailable")
)

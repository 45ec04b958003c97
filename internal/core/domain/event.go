package domain

import "time"

// AuthEventKind labels an entry in the authentication audit trail.
type AuthEventKind string

const (
	AuthRegistered  AuthEventKind = "registered"
	AuthLoginOK     AuthEventKind = "login_ok"
	AuthLoginFailed AuthEventKind = "login_failed"
)

// AuthEvent records a single authentication attempt for the audit trail.
// Email is the normalized form; UserID is empty when the attempt never
// resolved to an account.
type AuthEvent struct {
	Email     string
	UserID    string
	Kind      AuthEventKind
	Timestamp time.Time
}

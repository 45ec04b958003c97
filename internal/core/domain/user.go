package domain

import "time"

// Credential is the authentication method bound to an account. Exactly one
// concrete kind exists per user: a stored password hash, or a link to an
// external identity provider. Provider-originated accounts carry no password,
// so "this account cannot password-login" is a type check, not a nil check.
type Credential interface {
	credentialKind() string
}

// PasswordCredential holds a bcrypt hash with its salt embedded.
type PasswordCredential struct {
	Hash string
}

// ExternalCredential links the account to an external identity provider.
type ExternalCredential struct {
	Provider string
	Subject  string // provider-side stable user id
}

const (
	CredentialPassword = "password"
	CredentialExternal = "external"
)

func (PasswordCredential) credentialKind() string { return CredentialPassword }
func (ExternalCredential) credentialKind() string { return CredentialExternal }

// User models an account that owns diary entries. Email is unique across the
// store, compared case-insensitively; callers normalize before lookups.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name,omitempty"`
	Credential  Credential `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/personal-diary/diary-api/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenIssuer mints and verifies stateless session tokens: HS256 JWTs
// carrying a single subject claim plus issued-at and expiry. The secret and
// TTL are injected at construction, never read from process globals.
//
// There is no revocation list; a token stays valid for its full TTL even if
// the account is disabled afterwards. That is the stateless-session tradeoff.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token whose subject is userID.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	now := t.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature and expiry and returns the subject claim. It never
// asserts the subject still exists; that is Resolve's job. All rejections
// collapse to domain.ErrInvalidCredential.
func (t *TokenIssuer) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidCredential
	}
	return claims.Subject, nil
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/personal-diary/diary-api/internal/api/metrics"
	"github.com/personal-diary/diary-api/internal/core/domain"
)

// UserIDKey is the context key under which Auth stores the resolved account's
// identifier.
const UserIDKey = "user_id"

// IdentityResolver turns a bearer token into the account it belongs to.
// *service.AuthService satisfies it.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Auth extracts the bearer token and resolves it into a live account before
// letting the request through. A token whose subject was deleted after
// issuance is rejected exactly like a forged one.
func Auth(auth IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			user, err := auth.Resolve(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredential) {
					metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication credentials")
				}
				// Store outage and the like; let the central handler map it.
				return err
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(UserIDKey, user.ID)
			return next(c)
		}
	}
}

// BearerToken parses an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

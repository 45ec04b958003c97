package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/personal-diary/diary-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. A missing id means the middleware never ran on this route;
// fail closed with 401 rather than serving unscoped data.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.UserIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

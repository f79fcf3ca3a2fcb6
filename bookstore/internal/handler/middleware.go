package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/pkg/auth"
)

const bearer = "Bearer "

// Authenticate resolves the bearer token to a user and stores the principal in
// the request context.
func (h *Handler) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, bearer) {
			return echo.NewHTTPError(http.StatusUnauthorized, "no token in Authorization header")
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, bearer))
		u, err := h.svc.Authenticate(c.Request().Context(), token)
		if err != nil {
			return h.fail(c, err)
		}
		ctx := auth.SetAuthContext(c.Request().Context(), u.ID, string(u.Role))
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !auth.IsAdmin(c.Request().Context()) {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

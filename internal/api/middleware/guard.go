package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
	"github.com/tradeready/portal/internal/core/service"
)

// Guard resolves the session of the device (or of a Bearer token) and lets
// only authenticated requests through. Anonymous requests fail with
// domain.ErrUnauthenticated, which the error handler turns into a 401 that
// points the client at the login page.
func Guard(portal ports.PortalService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bearer, err := bearerToken(c.Request().Header.Get("Authorization"))
			if err != nil {
				return err
			}

			session := service.NewSession(portal, DeviceID(c), bearer)
			if err := session.Resolve(c.Request().Context()); err != nil {
				return err
			}
			if !session.Authenticated() {
				return domain.ErrUnauthenticated
			}

			c.Set(ctxSession, session)
			return next(c)
		}
	}
}

// bearerToken extracts the token from an Authorization header. An empty
// header is not an error: the device cookie is used instead.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

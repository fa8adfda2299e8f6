package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeready/portal/internal/api/middleware"
	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/service"
)

// ctxTab returns the tab scope set by the ClientScope middleware. A missing
// scope means the middleware did not run, which is a wiring bug.
func ctxTab(c echo.Context) (string, error) {
	id := middleware.TabID(c)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing client scope")
	}
	return id, nil
}

// ctxSession returns the authenticated session set by the Guard middleware.
func ctxSession(c echo.Context) (*service.Session, *domain.User, error) {
	s := middleware.CurrentSession(c)
	if s == nil || s.Current() == nil {
		return nil, nil, domain.ErrUnauthenticated
	}
	return s, s.Current(), nil
}

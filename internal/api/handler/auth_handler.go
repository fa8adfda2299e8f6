package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeready/portal/internal/api/metrics"
	"github.com/tradeready/portal/internal/api/middleware"
	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/ports"
	"github.com/tradeready/portal/internal/core/service"
)

type AuthHandler struct {
	portal ports.PortalService
}

func NewAuthHandler(portal ports.PortalService) *AuthHandler {
	return &AuthHandler{portal: portal}
}

// Login authenticates a user and stores the session token for the device.
// The token is also returned for API clients that send it as a Bearer header.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session := service.NewSession(h.portal, middleware.DeviceID(c), "")
	token, user, err := session.SignIn(c.Request().Context(), req.Email, req.Password)
	recordLogin(err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user, Redirect: "/dashboard"})
}

// Logout clears the device's session token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session := service.NewSession(h.portal, middleware.DeviceID(c), "")
	if err := session.SignOut(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message:  "You have been successfully logged out.",
		Redirect: "/login",
	})
}

func recordLogin(err error) {
	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidCredentials):
		result = "invalid_credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		result = "not_found"
	default:
		result = "error"
	}
	metrics.LoginsTotal.WithLabelValues(result).Inc()
}

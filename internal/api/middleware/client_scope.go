package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tradeready/portal/internal/core/service"
)

// Cookie names for the two client scopes.
const (
	// TabCookie has no Max-Age so it ends with the browser session.
	TabCookie = "portal_tab"
	// DeviceCookie survives browser restarts.
	DeviceCookie = "portal_device"

	deviceMaxAge = 365 * 24 * 60 * 60
)

const (
	ctxTabID    = "tab_id"
	ctxDeviceID = "device_id"
	ctxSession  = "session"
)

// ClientScope makes sure every request carries a tab id and a device id,
// issuing fresh cookies for the ones that are missing or malformed.
func ClientScope(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tabID := scopeID(c, TabCookie, 0, secure)
			deviceID := scopeID(c, DeviceCookie, deviceMaxAge, secure)
			c.Set(ctxTabID, tabID)
			c.Set(ctxDeviceID, deviceID)
			return next(c)
		}
	}
}

func scopeID(c echo.Context, name string, maxAge int, secure bool) string {
	if ck, err := c.Cookie(name); err == nil {
		if _, err := uuid.Parse(ck.Value); err == nil {
			return ck.Value
		}
	}
	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    id,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// TabID returns the tab scope of the request.
func TabID(c echo.Context) string {
	id, _ := c.Get(ctxTabID).(string)
	return id
}

// DeviceID returns the device scope of the request.
func DeviceID(c echo.Context) string {
	id, _ := c.Get(ctxDeviceID).(string)
	return id
}

// CurrentSession returns the session resolved by Guard, or nil.
func CurrentSession(c echo.Context) *service.Session {
	s, _ := c.Get(ctxSession).(*service.Session)
	return s
}

package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tradeready/portal/internal/api/middleware"
	"github.com/tradeready/portal/internal/core/domain"
)

type stubPortal struct {
	loginFn   func(ctx context.Context, deviceID, email, password string) (string, *domain.User, error)
	currentFn func(ctx context.Context, deviceID string) (*domain.User, error)
	updateFn  func(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error)
	loggedOut []string
}

func (s *stubPortal) Login(ctx context.Context, deviceID, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, deviceID, email, password)
}

func (s *stubPortal) Register(context.Context, domain.RegisterInput) (*domain.User, error) {
	return nil, nil
}

func (s *stubPortal) CurrentUser(ctx context.Context, deviceID string) (*domain.User, error) {
	if s.currentFn == nil {
		return nil, nil
	}
	return s.currentFn(ctx, deviceID)
}

func (s *stubPortal) UserForToken(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUnauthenticated
}

func (s *stubPortal) Logout(_ context.Context, deviceID string) error {
	s.loggedOut = append(s.loggedOut, deviceID)
	return nil
}

func (s *stubPortal) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error) {
	return s.updateFn(ctx, id, patch)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator(nil)
	return e
}

// serve runs h behind ClientScope so tab and device ids are present. Cookies
// from a previous response can be replayed through cookies.
func serve(e *echo.Echo, h echo.HandlerFunc, method, target, body string, cookies ...string) (*httptest.ResponseRecorder, error) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, ck := range cookies {
		req.Header.Add("Cookie", ck)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if strings.Contains(target, "/steps/") {
		c.SetParamNames("step")
		c.SetParamValues(target[strings.LastIndex(target, "/")+1:])
	}
	err := middleware.ClientScope(false)(h)(c)
	return rec, err
}

// tabCookie extracts the tab cookie issued in rec as a Cookie header value.
func tabCookie(rec *httptest.ResponseRecorder) string {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.TabCookie {
			return ck.Name + "=" + ck.Value
		}
	}
	return ""
}

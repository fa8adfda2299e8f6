package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/service"
	"github.com/tradeready/portal/internal/infrastructure/db/memory"
	"github.com/tradeready/portal/internal/pkg/validation"
)

func newTestRouter(t *testing.T, authRPS float64) *echo.Echo {
	t.Helper()
	log := zerolog.Nop()
	users := memory.NewUserStore(memory.Latency{})
	tabs := memory.NewTabStore(time.Hour)
	v := validation.New()

	portal := service.NewPortalService(users, memory.NewTokenStore(), nil, service.PlainHasher{}, nil, log)
	activity := service.NewActivityService(memory.NewActivityRepository(), memory.NewDedupChecker(), log)
	reg := prometheus.NewRegistry()

	return NewRouter(Services{
		Portal:       portal,
		Assessment:   service.NewAssessmentService(tabs, nil, log),
		Registration: service.NewRegistrationService(tabs, portal, v, 0, log),
		Activity:     activity,
	}, Options{
		Log:        log,
		AuthRPS:    authRPS,
		AuthBurst:  1,
		Registerer: reg,
		Gatherer:   reg,
		Validator:  v,
	})
}

// client replays the cookies a browser tab would keep.
type client struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, e *echo.Echo) *client {
	return &client{t: t, e: e, cookies: map[string]*http.Cookie{}}
}

func (cl *client) do(method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	cl.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	cl.e.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		cl.cookies[ck.Name] = ck
	}

	var payload map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)
	return rec, payload
}

func (cl *client) expect(method, target, body string, code int) map[string]any {
	cl.t.Helper()
	rec, payload := cl.do(method, target, body)
	if rec.Code != code {
		cl.t.Fatalf("%s %s: expected %d, got %d: %s", method, target, code, rec.Code, rec.Body.String())
	}
	return payload
}

func TestRouter_EndToEnd(t *testing.T) {
	e := newTestRouter(t, 0)
	tab := newClient(t, e)

	// Gate is closed before the assessment.
	body := tab.expect(http.MethodGet, "/api/register/gate", "", http.StatusForbidden)
	if body["redirect"] != "/assessment" {
		t.Fatalf("expected redirect to assessment, got %v", body)
	}

	for i := 0; i < domain.QuestionCount; i++ {
		tab.expect(http.MethodPut, "/api/assessment/answer", `{"option":"Yes"}`, http.StatusOK)
		body = tab.expect(http.MethodPost, "/api/assessment/next", "", http.StatusOK)
	}
	if body["redirect"] != "/results?score=100" {
		t.Fatalf("unexpected completion payload %v", body)
	}

	body = tab.expect(http.MethodGet, "/api/results?score=100", "", http.StatusOK)
	if body["can_register"] != true || body["status"] != "passed" {
		t.Fatalf("unexpected results %v", body)
	}

	tab.expect(http.MethodGet, "/api/register/gate", "", http.StatusOK)
	tab.expect(http.MethodPost, "/api/register/steps/2", `{}`, http.StatusUnprocessableEntity)
	tab.expect(http.MethodPost, "/api/register/steps/1",
		`{"company_name":"Acme Exports","registration_number":"RC-1","country":"Ghana","industry":"Cocoa"}`, http.StatusOK)
	tab.expect(http.MethodPost, "/api/register/steps/3", `{}`, http.StatusConflict)
	tab.expect(http.MethodPost, "/api/register/steps/2",
		`{"name":"Ama Mensah","email":"ama@acme.test","phone":"+233","address":"Accra","tax_id":"TIN-9","vat":"GH-VAT-1","password":"longpassword"}`, http.StatusOK)
	body = tab.expect(http.MethodPost, "/api/register/steps/3", `{}`, http.StatusCreated)
	if body["redirect"] != "/login" || body["redirect_after_ms"] != float64(5000) {
		t.Fatalf("unexpected final step payload %v", body)
	}

	// Signed-in area.
	body = tab.expect(http.MethodGet, "/api/portal/me", "", http.StatusUnauthorized)
	if body["redirect"] != "/login" {
		t.Fatalf("expected redirect to login, got %v", body)
	}
	tab.expect(http.MethodPost, "/api/auth/login", `{"email":"ama@acme.test","password":"wrong"}`, http.StatusUnauthorized)
	tab.expect(http.MethodPost, "/api/auth/login", `{"email":"ghost@acme.test","password":"x"}`, http.StatusNotFound)
	body = tab.expect(http.MethodPost, "/api/auth/login", `{"email":"AMA@acme.test","password":"longpassword"}`, http.StatusOK)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("expected a token, got %v", body)
	}

	body = tab.expect(http.MethodGet, "/api/portal/dashboard", "", http.StatusOK)
	if summary, _ := body["assessment"].(map[string]any); summary["score"] != float64(100) {
		t.Fatalf("dashboard should show the tab's score, got %v", body)
	}
	body = tab.expect(http.MethodPatch, "/api/portal/profile", `{"phone":"+233 555"}`, http.StatusOK)
	if body["phone"] != "+233 555" || body["email"] != "ama@acme.test" || body["vat"] != "GH-VAT-1" {
		t.Fatalf("unexpected profile %v", body)
	}

	// A second tab of the same device shares the session but not the assessment.
	other := newClient(t, e)
	other.cookies["portal_device"] = tab.cookies["portal_device"]
	other.expect(http.MethodGet, "/api/portal/me", "", http.StatusOK)
	other.expect(http.MethodGet, "/api/register/gate", "", http.StatusForbidden)

	// API clients can use the token directly.
	if code := bearerStatus(e, token); code != http.StatusOK {
		t.Fatalf("bearer access: expected 200, got %d", code)
	}

	// Never issued, even though it decodes to a real account.
	forged, _ := service.OpaqueTokenCodec{}.Encode("ama@acme.test", time.UnixMilli(1))
	if code := bearerStatus(e, forged); code != http.StatusUnauthorized {
		t.Fatalf("unissued bearer: expected 401, got %d", code)
	}

	tab.expect(http.MethodPost, "/api/auth/logout", "", http.StatusOK)
	tab.expect(http.MethodGet, "/api/portal/dashboard", "", http.StatusUnauthorized)
	other.expect(http.MethodGet, "/api/portal/me", "", http.StatusUnauthorized)
	if code := bearerStatus(e, token); code != http.StatusUnauthorized {
		t.Fatalf("bearer after logout: expected 401, got %d", code)
	}
}

func bearerStatus(e *echo.Echo, token string) int {
	req := httptest.NewRequest(http.MethodGet, "/api/portal/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRouter_RegisterNotExposed(t *testing.T) {
	e := newTestRouter(t, 0)
	rec, _ := newClient(t, e).do(http.MethodPost, "/api/auth/register", `{"email":"x@example.com","password":"longpassword"}`)
	if rec.Code < 400 || rec.Code == http.StatusTooManyRequests {
		t.Fatalf("expected the register endpoint to be absent, got %d", rec.Code)
	}
}

func TestRouter_AuthRateLimit(t *testing.T) {
	e := newTestRouter(t, 0.001)
	cl := newClient(t, e)
	cl.expect(http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"x"}`, http.StatusNotFound)
	cl.expect(http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"x"}`, http.StatusTooManyRequests)
}

func TestRouter_Operational(t *testing.T) {
	e := newTestRouter(t, 0)
	cl := newClient(t, e)
	cl.expect(http.MethodGet, "/health", "", http.StatusOK)
	cl.expect(http.MethodGet, "/health/ready", "", http.StatusOK)
	cl.expect(http.MethodGet, "/api/assessment/questions", "", http.StatusOK)

	rec, _ := cl.do(http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "requests_total") {
		t.Fatalf("expected request metrics, got %d", rec.Code)
	}
}

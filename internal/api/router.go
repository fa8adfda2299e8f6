package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/tradeready/portal/docs"
	"github.com/tradeready/portal/internal/api/handler"
	"github.com/tradeready/portal/internal/api/middleware"
	"github.com/tradeready/portal/internal/core/ports"
	"github.com/tradeready/portal/internal/infrastructure/http/handlers"
	"github.com/tradeready/portal/internal/pkg/validation"
)

// Services are the core services the HTTP surface exposes.
type Services struct {
	Portal       ports.PortalService
	Assessment   ports.AssessmentService
	Registration ports.RegistrationService
	Activity     ports.ActivityService
}

// Options tunes the router. Zero values disable the optional pieces.
type Options struct {
	Log zerolog.Logger
	// Health lists the readiness checks of the configured backends.
	Health map[string]handlers.Checker
	// SecureCookies marks the scope cookies Secure (HTTPS deployments).
	SecureCookies bool
	// AuthRPS and AuthBurst rate limit /api/auth per client IP; AuthRPS <= 0
	// turns the limiter off.
	AuthRPS   float64
	AuthBurst int
	// Registerer and Gatherer back the HTTP metrics; they default to the
	// global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Validator  *validation.Validator
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator(opts.Validator)
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "portal",
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
		},
	}))

	// --- Health checks and tooling (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(opts.Health)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Handlers ---
	assessmentHandler := handler.NewAssessmentHandler(svc.Assessment, svc.Portal, opts.Log)
	resultsHandler := handler.NewResultsHandler(svc.Assessment)
	registrationHandler := handler.NewRegistrationHandler(svc.Registration, svc.Assessment)
	authHandler := handler.NewAuthHandler(svc.Portal)
	portalHandler := handler.NewPortalHandler(svc.Portal, svc.Assessment, svc.Activity, opts.Log)

	api := e.Group("/api", middleware.ClientScope(opts.SecureCookies))

	// --- Assessment ---
	assessment := api.Group("/assessment")
	assessment.GET("", assessmentHandler.Current)
	assessment.GET("/questions", assessmentHandler.Questions)
	assessment.PUT("/answer", assessmentHandler.Answer)
	assessment.POST("/next", assessmentHandler.Next)
	assessment.POST("/back", assessmentHandler.Back)
	assessment.DELETE("", assessmentHandler.Restart)

	api.GET("/results", resultsHandler.Get)

	// --- Registration (gated on the tab's assessment) ---
	register := api.Group("/register")
	register.GET("/gate", registrationHandler.Gate)
	register.GET("/draft", registrationHandler.Draft)
	register.POST("/steps/:step", registrationHandler.SubmitStep)

	// --- Auth ---
	auth := api.Group("/auth")
	if opts.AuthRPS > 0 {
		auth.Use(authRateLimiter(opts.AuthRPS, opts.AuthBurst))
	}
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// --- Signed-in area ---
	portal := api.Group("/portal", middleware.Guard(svc.Portal))
	portal.GET("/me", portalHandler.Me)
	portal.GET("/dashboard", portalHandler.Dashboard)
	portal.PATCH("/profile", portalHandler.UpdateProfile)

	return e
}

func authRateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	if burst <= 0 {
		burst = 1
	}
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(rps),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
		},
	})
}

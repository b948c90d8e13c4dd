package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/hireflow/interviewer/docs"
	"github.com/hireflow/interviewer/internal/api/handler"
	"github.com/hireflow/interviewer/internal/api/middleware"
	"github.com/hireflow/interviewer/internal/core/ports"
)

// RouterDeps are the services and settings the HTTP surface is built from.
type RouterDeps struct {
	Interviews ports.InterviewService
	Admin      ports.AdminService
	Auth       ports.AuthService
	Config     ports.ConfigService
	Health     map[string]handler.Pinger

	CORSOrigins []string
	// LoginRate is the sustained per-IP login attempt rate; LoginBurst the
	// attempts allowed at once.
	LoginRate  rate.Limit
	LoginBurst int

	// Registerer receives the HTTP metrics; nil means the default registry.
	Registerer prometheus.Registerer
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "interviewer",
		Registerer: deps.Registerer,
	}))

	// --- Handlers ---
	interviewHandler := handler.NewInterviewHandler(deps.Interviews)
	adminHandler := handler.NewAdminHandler(deps.Auth, deps.Admin)
	configHandler := handler.NewConfigHandler(deps.Config, deps.Logger)
	healthHandler := handler.NewHealthHandler(deps.Health)

	// --- Meta routes (no auth required) ---
	e.GET("/", configHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Candidate routes ---
	ai := e.Group("/ai")
	ai.POST("/start-interview", interviewHandler.Start)
	ai.GET("/next-question/:id", interviewHandler.NextQuestion)
	ai.POST("/submit-answer/:id", interviewHandler.SubmitAnswer, echomiddleware.BodyLimit("26M"))
	ai.GET("/interview-results/:id", interviewHandler.Results)
	ai.GET("/question-audio/:id", interviewHandler.QuestionAudio)

	// --- Admin routes ---
	admin := e.Group("/api/admin")
	admin.POST("/login", adminHandler.Login, loginLimiter(deps.LoginRate, deps.LoginBurst))

	protected := admin.Group("", middleware.Auth(deps.Auth))
	protected.GET("/interviews", adminHandler.ListInterviews)
	protected.GET("/interviews/:id", adminHandler.GetInterview)
	protected.GET("/config", configHandler.Get)
	protected.PUT("/config", configHandler.Update)

	return e
}

func loginLimiter(limit rate.Limit, burst int) echo.MiddlewareFunc {
	if limit <= 0 {
		limit = rate.Every(6 * time.Second)
	}
	if burst <= 0 {
		burst = 5
	}
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     burst,
			ExpiresIn: 10 * time.Minute,
		}),
	})
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

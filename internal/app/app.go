// Package app assembles services and the HTTP router from storage backends
// and AI collaborators.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/hireflow/interviewer/internal/api"
	"github.com/hireflow/interviewer/internal/api/handler"
	"github.com/hireflow/interviewer/internal/api/metrics"
	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/ports"
	"github.com/hireflow/interviewer/internal/core/prompts"
	"github.com/hireflow/interviewer/internal/core/service"
	"github.com/hireflow/interviewer/internal/pkg/keylock"
)

// Stores are the persistence adapters of one backend (mongo+redis or memory).
type Stores struct {
	Candidates ports.CandidateRepository
	Interviews ports.InterviewRepository
	Questions  ports.QuestionRepository
	Answers    ports.AnswerRepository
	Admins     ports.AdminRepository
	Settings   ports.ConfigStore
	AudioCache ports.AudioCache
	// Health lists the dependencies probed by /health/ready.
	Health map[string]handler.Pinger
}

// Collaborators are the external AI services.
type Collaborators struct {
	LLM         ports.TextGenerator
	Transcriber ports.Transcriber
	Speech      ports.SpeechSynthesizer
}

// Options are the process settings the services need.
type Options struct {
	JWTSecret     string
	AdminTokenTTL time.Duration
	Defaults      domain.RuntimeConfig
	CORSOrigins   []string
	LoginRate     rate.Limit
	LoginBurst    int
	Registerer    prometheus.Registerer
}

// App is the assembled service graph.
type App struct {
	Auth       *service.AuthService
	Config     *service.ConfigService
	Interviews *service.InterviewService
	Admin      *service.AdminService
	Router     *echo.Echo
}

// New wires every service, loads the stored runtime config and builds the
// router. Collaborators and the audio cache are wrapped with metrics.
func New(ctx context.Context, stores Stores, collab Collaborators, opts Options, log zerolog.Logger) (*App, error) {
	catalogue, err := prompts.Default()
	if err != nil {
		return nil, fmt.Errorf("loading prompts: %w", err)
	}

	configSvc, err := service.NewConfigService(stores.Settings, opts.Defaults, log.With().Str("component", "config").Logger())
	if err != nil {
		return nil, err
	}
	if err := configSvc.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading runtime config: %w", err)
	}

	llm := metrics.TextGenerator(collab.LLM)
	sessions := service.NewSessionMachine(service.SessionStore{
		Candidates: stores.Candidates,
		Interviews: stores.Interviews,
		Questions:  stores.Questions,
		Answers:    stores.Answers,
	}, keylock.New(0), log.With().Str("component", "session").Logger())

	interviews := service.NewInterviewService(service.InterviewDeps{
		Candidates:  stores.Candidates,
		Sessions:    sessions,
		Generator:   service.NewQuestionGenerator(llm, catalogue),
		Evaluator:   service.NewEvaluator(llm, catalogue),
		Transcriber: metrics.Transcriber(collab.Transcriber),
		Speech:      metrics.SpeechSynthesizer(collab.Speech),
		AudioCache:  metrics.AudioCache(stores.AudioCache),
		Config:      configSvc,
	}, log.With().Str("component", "interview").Logger())

	auth := service.NewAuthService(stores.Admins, opts.JWTSecret, opts.AdminTokenTTL)
	admin := service.NewAdminService(stores.Candidates, stores.Interviews, sessions, log.With().Str("component", "admin").Logger())

	router := api.NewRouter(api.RouterDeps{
		Interviews:  interviews,
		Admin:       admin,
		Auth:        auth,
		Config:      configSvc,
		Health:      stores.Health,
		CORSOrigins: opts.CORSOrigins,
		LoginRate:   opts.LoginRate,
		LoginBurst:  opts.LoginBurst,
		Registerer:  opts.Registerer,
		Logger:      log.With().Str("component", "http").Logger(),
	})

	return &App{
		Auth:       auth,
		Config:     configSvc,
		Interviews: interviews,
		Admin:      admin,
		Router:     router,
	}, nil
}

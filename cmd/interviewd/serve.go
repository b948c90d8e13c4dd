package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hireflow/interviewer/internal/api/handler"
	"github.com/hireflow/interviewer/internal/app"
	"github.com/hireflow/interviewer/internal/infrastructure/config"
	"github.com/hireflow/interviewer/internal/infrastructure/db/memory"
	mongodb "github.com/hireflow/interviewer/internal/infrastructure/db/mongo"
	redisdb "github.com/hireflow/interviewer/internal/infrastructure/db/redis"
	"github.com/hireflow/interviewer/internal/infrastructure/llm"
	"github.com/hireflow/interviewer/internal/infrastructure/speech"
	"github.com/hireflow/interviewer/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	cfg, err := config.Load(parent)
	if err != nil {
		return err
	}
	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "interviewd",
	})
	log := logger.Component("serve")

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, closeStores, err := openStores(ctx, cfg, logger.Component("store"))
	if err != nil {
		return err
	}
	defer closeStores()

	collab, err := collaborators(cfg)
	if err != nil {
		return err
	}

	a, err := app.New(ctx, stores, collab, app.Options{
		JWTSecret:     cfg.JWTSecret,
		AdminTokenTTL: cfg.AdminTokenTTL,
		Defaults:      cfg.Interviews.Defaults(),
		CORSOrigins:   cfg.CORSOrigins,
	}, logger.Get())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("store", cfg.StoreDriver).
			Str("llm", cfg.LLM.Provider).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStores connects the configured backend. The returned func releases it.
func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (app.Stores, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Warn().Msg("using in-memory store, data is lost on exit")
		store := memory.New()
		return app.Stores{
			Candidates: store.Candidates(),
			Interviews: store.Interviews(),
			Questions:  store.Questions(),
			Answers:    store.Answers(),
			Admins:     store.Admins(),
			Settings:   store.Settings(),
			AudioCache: store.AudioCache(),
			Health:     map[string]handler.Pinger{"memory": store},
		}, func() {}, nil
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return app.Stores{}, nil, err
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return app.Stores{}, nil, err
	}
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return app.Stores{}, nil, err
	}

	closeFn := func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("closing redis")
		}
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("closing mongo")
		}
	}
	return app.Stores{
		Candidates: mongodb.NewCandidateRepository(db),
		Interviews: mongodb.NewInterviewRepository(db),
		Questions:  mongodb.NewQuestionRepository(db),
		Answers:    mongodb.NewAnswerRepository(db),
		Admins:     mongodb.NewAdminRepository(db),
		Settings:   mongodb.NewSettingsRepository(db),
		AudioCache: redisdb.NewAudioCache(rdb),
		Health: map[string]handler.Pinger{
			"mongodb": mongodb.NewPinger(db),
			"redis":   redisdb.NewPinger(rdb),
		},
	}, closeFn, nil
}

func collaborators(cfg *config.Config) (app.Collaborators, error) {
	gen, err := llm.New(cfg.LLM)
	if err != nil {
		return app.Collaborators{}, err
	}
	log := logger.Component("collaborators")
	if cfg.Speech.TranscribeKey == "" {
		log.Warn().Msg("TRANSCRIBE_API_KEY is empty, answer submission will fail")
	}
	ttsKey := cfg.SynthesisKey()
	if ttsKey == "" {
		log.Warn().Msg("no TTS key configured, question audio will fail")
	}
	return app.Collaborators{
		LLM:         gen,
		Transcriber: speech.NewWhisper(cfg.Speech.TranscribeKey, cfg.Speech.TranscribeBaseURL, cfg.Speech.TranscribeModel),
		Speech:      speech.NewTTS(ttsKey, cfg.Speech.TTSBaseURL, cfg.Speech.TTSModel, cfg.Speech.TTSVoice),
	}, nil
}

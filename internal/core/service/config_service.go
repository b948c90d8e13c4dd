package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/ports"
)

// ConfigService owns the runtime interview configuration. Reads are lock-free
// snapshot loads; writes are serialised and become visible once Apply returns.
type ConfigService struct {
	store    ports.ConfigStore
	logger   zerolog.Logger
	current  atomic.Pointer[domain.RuntimeConfig]
	applyMu  sync.Mutex
	defaults domain.RuntimeConfig
}

// NewConfigService seeds the snapshot with defaults. Call Load to pick up a
// previously persisted configuration.
func NewConfigService(store ports.ConfigStore, defaults domain.RuntimeConfig, logger zerolog.Logger) (*ConfigService, error) {
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}
	s := &ConfigService{store: store, logger: logger, defaults: defaults}
	cfg := defaults
	s.current.Store(&cfg)
	return s, nil
}

// Load replaces the snapshot with the stored configuration. A missing or
// invalid stored config leaves the defaults in place.
func (s *ConfigService) Load(ctx context.Context) error {
	stored, err := s.store.Load(ctx)
	if errors.Is(err, domain.ErrConfigNotFound) {
		s.logger.Info().
			Int("max_questions", s.defaults.MaxQuestions).
			Int("question_timeout_seconds", s.defaults.QuestionTimeoutSeconds).
			Msg("no stored config, using defaults")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := stored.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("stored config out of bounds, using defaults")
		return nil
	}
	cfg := *stored
	s.current.Store(&cfg)
	return nil
}

// Current returns the configuration visible to new requests.
func (s *ConfigService) Current() domain.RuntimeConfig {
	return *s.current.Load()
}

// Validate checks the fields present in update. Absent fields are ignored.
func (s *ConfigService) Validate(update ports.ConfigUpdate) error {
	if update.MaxQuestions == nil && update.QuestionTimeoutSeconds == nil {
		return fmt.Errorf("%w: no configuration values provided", domain.ErrValidation)
	}
	return merge(s.Current(), update).Validate()
}

// Apply validates update, persists the merged configuration and publishes it.
// On any error the visible configuration is unchanged.
func (s *ConfigService) Apply(ctx context.Context, update ports.ConfigUpdate) (domain.RuntimeConfig, error) {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	if err := s.Validate(update); err != nil {
		return s.Current(), err
	}

	next := merge(s.Current(), update)
	if err := s.store.Save(ctx, next); err != nil {
		return s.Current(), fmt.Errorf("save config: %w", err)
	}
	s.current.Store(&next)

	s.logger.Info().
		Int("max_questions", next.MaxQuestions).
		Int("question_timeout_seconds", next.QuestionTimeoutSeconds).
		Msg("config updated")
	return next, nil
}

func merge(cfg domain.RuntimeConfig, update ports.ConfigUpdate) domain.RuntimeConfig {
	if update.MaxQuestions != nil {
		cfg.MaxQuestions = *update.MaxQuestions
	}
	if update.QuestionTimeoutSeconds != nil {
		cfg.QuestionTimeoutSeconds = *update.QuestionTimeoutSeconds
	}
	return cfg
}

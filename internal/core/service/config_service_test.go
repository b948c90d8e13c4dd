package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/ports"
)

type stubConfigStore struct {
	mu      sync.Mutex
	saved   *domain.RuntimeConfig
	saves   int
	loadErr error
	saveErr error
}

func (s *stubConfigStore) Load(context.Context) (*domain.RuntimeConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.saved == nil {
		return nil, domain.ErrConfigNotFound
	}
	cfg := *s.saved
	return &cfg, nil
}

func (s *stubConfigStore) Save(_ context.Context, cfg domain.RuntimeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = &cfg
	s.saves++
	return nil
}

var testDefaults = domain.RuntimeConfig{MaxQuestions: 5, QuestionTimeoutSeconds: 120}

func intPtr(v int) *int { return &v }

func newConfigSvc(t *testing.T, store *stubConfigStore) *ConfigService {
	t.Helper()
	svc, err := NewConfigService(store, testDefaults, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewConfigService returned error: %v", err)
	}
	return svc
}

func TestConfigService_RejectsInvalidDefaults(t *testing.T) {
	_, err := NewConfigService(&stubConfigStore{}, domain.RuntimeConfig{MaxQuestions: 0, QuestionTimeoutSeconds: 120}, zerolog.Nop())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestConfigService_Load(t *testing.T) {
	store := &stubConfigStore{}
	svc := newConfigSvc(t, store)

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load with empty store returned error: %v", err)
	}
	if svc.Current() != testDefaults {
		t.Fatalf("expected defaults, got %+v", svc.Current())
	}

	store.saved = &domain.RuntimeConfig{MaxQuestions: 12, QuestionTimeoutSeconds: 300}
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := svc.Current(); got.MaxQuestions != 12 || got.QuestionTimeoutSeconds != 300 {
		t.Fatalf("expected stored config, got %+v", got)
	}
}

func TestConfigService_Load_IgnoresOutOfBounds(t *testing.T) {
	store := &stubConfigStore{saved: &domain.RuntimeConfig{MaxQuestions: 90, QuestionTimeoutSeconds: 120}}
	svc := newConfigSvc(t, store)

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if svc.Current() != testDefaults {
		t.Fatalf("expected defaults, got %+v", svc.Current())
	}
}

func TestConfigService_Load_StoreError(t *testing.T) {
	store := &stubConfigStore{loadErr: errors.New("db down")}
	svc := newConfigSvc(t, store)

	if err := svc.Load(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestConfigService_Apply_RoundTrip(t *testing.T) {
	store := &stubConfigStore{}
	svc := newConfigSvc(t, store)

	cfg, err := svc.Apply(context.Background(), ports.ConfigUpdate{MaxQuestions: intPtr(8)})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if cfg.MaxQuestions != 8 || cfg.QuestionTimeoutSeconds != testDefaults.QuestionTimeoutSeconds {
		t.Fatalf("unexpected applied config: %+v", cfg)
	}
	if got := svc.Current().MaxQuestions; got != 8 {
		t.Fatalf("expected max_questions 8, got %d", got)
	}
	if store.saved == nil || store.saved.MaxQuestions != 8 {
		t.Fatalf("expected config persisted, got %+v", store.saved)
	}
}

func TestConfigService_Apply_RejectsOutOfBounds(t *testing.T) {
	cases := []ports.ConfigUpdate{
		{MaxQuestions: intPtr(0)},
		{MaxQuestions: intPtr(51)},
		{QuestionTimeoutSeconds: intPtr(29)},
		{QuestionTimeoutSeconds: intPtr(601)},
		{MaxQuestions: intPtr(10), QuestionTimeoutSeconds: intPtr(10)},
		{},
	}
	for _, update := range cases {
		store := &stubConfigStore{}
		svc := newConfigSvc(t, store)

		if _, err := svc.Apply(context.Background(), update); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("update %+v: expected ErrValidation, got %v", update, err)
		}
		if svc.Current() != testDefaults {
			t.Fatalf("update %+v: config mutated to %+v", update, svc.Current())
		}
		if store.saves != 0 {
			t.Fatalf("update %+v: expected nothing persisted", update)
		}
	}
}

func TestConfigService_Apply_Bounds(t *testing.T) {
	svc := newConfigSvc(t, &stubConfigStore{})

	for _, update := range []ports.ConfigUpdate{
		{MaxQuestions: intPtr(1), QuestionTimeoutSeconds: intPtr(30)},
		{MaxQuestions: intPtr(50), QuestionTimeoutSeconds: intPtr(600)},
	} {
		if _, err := svc.Apply(context.Background(), update); err != nil {
			t.Fatalf("update %+v: unexpected error %v", update, err)
		}
	}
}

func TestConfigService_Apply_SaveFailureLeavesSnapshot(t *testing.T) {
	store := &stubConfigStore{saveErr: errors.New("write failed")}
	svc := newConfigSvc(t, store)

	if _, err := svc.Apply(context.Background(), ports.ConfigUpdate{MaxQuestions: intPtr(9)}); err == nil {
		t.Fatalf("expected error")
	}
	if svc.Current() != testDefaults {
		t.Fatalf("expected unchanged config, got %+v", svc.Current())
	}
}

func TestConfigService_ConcurrentReadersDuringApply(t *testing.T) {
	svc := newConfigSvc(t, &stubConfigStore{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, _ = svc.Apply(context.Background(), ports.ConfigUpdate{MaxQuestions: intPtr(1 + n%50)})
		}(i)
		go func() {
			defer wg.Done()
			if err := svc.Current().Validate(); err != nil {
				t.Errorf("reader observed invalid config: %v", err)
			}
		}()
	}
	wg.Wait()
}

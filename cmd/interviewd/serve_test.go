package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hireflow/interviewer/internal/infrastructure/config"
	"github.com/hireflow/interviewer/pkg/logger"
)

func TestOpenStores_MemoryDriver(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	stores, closeFn, err := openStores(context.Background(), &config.Config{StoreDriver: config.StoreMemory}, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()

	if stores.Interviews == nil || stores.Answers == nil || stores.AudioCache == nil {
		t.Fatalf("expected memory repositories to be wired, got %+v", stores)
	}
	if _, ok := stores.Health["memory"]; !ok {
		t.Fatalf("expected memory health pinger, got %v", stores.Health)
	}
	if !strings.Contains(buf.String(), "in-memory store") {
		t.Fatalf("expected in-memory warning in log, got %q", buf.String())
	}
}

func TestCollaborators_WarnsOnMissingKeys(t *testing.T) {
	var buf bytes.Buffer
	logger.Reset()
	logger.Init(logger.Options{Level: "warn", Output: &buf})
	t.Cleanup(logger.Reset)

	cfg := &config.Config{}
	cfg.LLM.Provider = config.ProviderOpenAI
	cfg.LLM.OpenAIKey = "sk-test"

	collab, err := collaborators(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if collab.LLM == nil || collab.Transcriber == nil || collab.Speech == nil {
		t.Fatalf("expected all collaborators, got %+v", collab)
	}
	if !strings.Contains(buf.String(), "TRANSCRIBE_API_KEY is empty") {
		t.Fatalf("expected transcription key warning, got %q", buf.String())
	}
}

// Package speech adapts the OpenAI audio API for transcription and synthesis.
package speech

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/hireflow/interviewer/internal/core/ports"
)

const defaultTimeout = 90 * time.Second

// Whisper sends recordings to an OpenAI-compatible transcription endpoint.
type Whisper struct {
	client *openai.Client
	model  string
}

func NewWhisper(apiKey, baseURL, model string) *Whisper {
	return &Whisper{client: newClient(apiKey, baseURL), model: model}
}

// Transcribe returns the recognised text with surrounding whitespace trimmed.
func (w *Whisper) Transcribe(ctx context.Context, audio ports.Audio) (string, error) {
	filename := audio.Filename
	if filename == "" {
		filename = "answer.webm"
	}
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: filename,
		Reader:   bytes.NewReader(audio.Data),
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

func newClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	return openai.NewClientWithConfig(cfg)
}

package metrics

import (
	"context"
	"time"

	"github.com/hireflow/interviewer/internal/core/ports"
)

const (
	collaboratorLLM         = "llm"
	collaboratorTranscriber = "transcriber"
	collaboratorTTS         = "tts"
)

func observe(collaborator string, start time.Time, err error) {
	UpstreamDuration.WithLabelValues(collaborator).Observe(time.Since(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(collaborator, outcome).Inc()
}

type textGenerator struct{ next ports.TextGenerator }

// TextGenerator wraps g so every call is counted and timed.
func TextGenerator(g ports.TextGenerator) ports.TextGenerator {
	return textGenerator{next: g}
}

func (t textGenerator) Generate(ctx context.Context, messages []ports.Message, temperature float64) (string, error) {
	start := time.Now()
	out, err := t.next.Generate(ctx, messages, temperature)
	observe(collaboratorLLM, start, err)
	return out, err
}

type transcriber struct{ next ports.Transcriber }

// Transcriber wraps tr so every call is counted and timed.
func Transcriber(tr ports.Transcriber) ports.Transcriber {
	return transcriber{next: tr}
}

func (t transcriber) Transcribe(ctx context.Context, audio ports.Audio) (string, error) {
	start := time.Now()
	out, err := t.next.Transcribe(ctx, audio)
	observe(collaboratorTranscriber, start, err)
	return out, err
}

type synthesizer struct{ next ports.SpeechSynthesizer }

// SpeechSynthesizer wraps s so every call is counted and timed.
func SpeechSynthesizer(s ports.SpeechSynthesizer) ports.SpeechSynthesizer {
	return synthesizer{next: s}
}

func (s synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()
	out, err := s.next.Synthesize(ctx, text)
	observe(collaboratorTTS, start, err)
	return out, err
}

type audioCache struct{ next ports.AudioCache }

// AudioCache wraps c so lookups are counted by result.
func AudioCache(c ports.AudioCache) ports.AudioCache {
	return audioCache{next: c}
}

func (a audioCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, found, err := a.next.Get(ctx, key)
	switch {
	case err != nil:
		TTSCacheTotal.WithLabelValues("error").Inc()
	case found:
		TTSCacheTotal.WithLabelValues("hit").Inc()
	default:
		TTSCacheTotal.WithLabelValues("miss").Inc()
	}
	return data, found, err
}

func (a audioCache) Set(ctx context.Context, key string, data []byte) error {
	return a.next.Set(ctx, key, data)
}

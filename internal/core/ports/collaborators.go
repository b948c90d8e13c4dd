package ports

import "context"

// Message is one chat turn sent to a text generator.
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// TextGenerator produces a completion for a conversation.
type TextGenerator interface {
	Generate(ctx context.Context, messages []Message, temperature float64) (string, error)
}

// Audio is an uploaded recording.
type Audio struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Transcriber converts recorded speech to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio Audio) (string, error)
}

// SpeechSynthesizer converts text to encoded audio (mp3).
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// AudioCache stores synthesized audio by content key.
type AudioCache interface {
	// Get reports found=false on a miss; err is reserved for cache failures.
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Set(ctx context.Context, key string, data []byte) error
}

package speech

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
)

// TTS turns question text into mp3 audio via an OpenAI-compatible speech
// endpoint.
type TTS struct {
	client *openai.Client
	model  string
	voice  string
}

func NewTTS(apiKey, baseURL, model, voice string) *TTS {
	return &TTS{client: newClient(apiKey, baseURL), model: model, voice: voice}
}

func (t *TTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := t.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(t.model),
		Voice:          openai.SpeechVoice(t.voice),
		Input:          text,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("synthesize: reading audio: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("synthesize: empty audio response")
	}
	return data, nil
}

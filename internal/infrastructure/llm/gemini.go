package llm

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/hireflow/interviewer/internal/core/ports"
)

const geminiAPIVersion = "v1beta"

// Gemini calls generateContent on the Gemini Developer API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(apiKey, baseURL, model string) (*Gemini, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    baseURL,
			APIVersion: geminiAPIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: creating client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate maps system messages to the system instruction and the rest to
// user/model turns, then returns the text of the first candidate.
func (c *Gemini) Generate(ctx context.Context, messages []ports.Message, temperature float64) (string, error) {
	cfg := &genai.GenerateContentConfig{Temperature: genai.Ptr(float32(temperature))}
	var contents []*genai.Content
	for _, m := range messages {
		part := &genai.Part{Text: m.Content}
		switch m.Role {
		case ports.RoleSystem:
			if cfg.SystemInstruction == nil {
				cfg.SystemInstruction = &genai.Content{}
			}
			cfg.SystemInstruction.Parts = append(cfg.SystemInstruction.Parts, part)
		case "assistant":
			contents = append(contents, &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{part}})
		default:
			contents = append(contents, &genai.Content{Role: genai.RoleUser, Parts: []*genai.Part{part}})
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: response has no candidates")
	}
	return resp.Text(), nil
}

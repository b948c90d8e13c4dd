package llm

import (
	"fmt"

	"github.com/hireflow/interviewer/internal/core/ports"
	"github.com/hireflow/interviewer/internal/infrastructure/config"
)

// New selects the text generator named by cfg.Provider.
func New(cfg config.LLMConfig) (ports.TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("llm: OPENAI_API_KEY is required for provider %q", cfg.Provider)
		}
		return NewOpenAI(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	case config.ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("llm: GEMINI_API_KEY is required for provider %q", cfg.Provider)
		}
		return NewGemini(cfg.GeminiKey, cfg.GeminiBaseURL, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

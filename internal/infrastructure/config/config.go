package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/hireflow/interviewer/internal/core/domain"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Port          string        `env:"PORT,            default=8080"`
	Env           string        `env:"ENV,             default=development"`
	JWTSecret     string        `env:"JWT_SECRET"`
	AdminTokenTTL time.Duration `env:"ADMIN_TOKEN_TTL, default=24h"`
	LogLevel      string        `env:"LOG_LEVEL,       default=info"`
	StoreDriver   string        `env:"STORE_DRIVER,    default=mongo"`
	CORSOrigins   []string      `env:"CORS_ORIGINS,    default=http://localhost:3000"`

	Mongo      MongoConfig
	Redis      RedisConfig
	LLM        LLMConfig
	Speech     SpeechConfig
	Interviews InterviewConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=interviewer"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// LLMConfig selects and configures the text generation provider.
type LLMConfig struct {
	Provider      string `env:"LLM_PROVIDER,    default=openai"`
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL, default=https://api.openai.com/v1"`
	OpenAIModel   string `env:"OPENAI_MODEL,    default=gpt-4o-mini"`
	GeminiKey     string `env:"GEMINI_API_KEY"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL, default=https://generativelanguage.googleapis.com/"`
	GeminiModel   string `env:"GEMINI_MODEL,    default=gemini-1.5-flash"`
}

// SpeechConfig configures transcription and speech synthesis. Both speak the
// OpenAI audio API; transcription defaults to Groq's compatible endpoint.
type SpeechConfig struct {
	TranscribeKey     string `env:"TRANSCRIBE_API_KEY"`
	TranscribeBaseURL string `env:"TRANSCRIBE_BASE_URL, default=https://api.groq.com/openai/v1"`
	TranscribeModel   string `env:"TRANSCRIBE_MODEL,    default=whisper-large-v3"`
	TTSKey            string `env:"TTS_API_KEY"`
	TTSBaseURL        string `env:"TTS_BASE_URL,        default=https://api.openai.com/v1"`
	TTSModel          string `env:"TTS_MODEL,           default=tts-1"`
	TTSVoice          string `env:"TTS_VOICE,           default=alloy"`
}

// SynthesisKey returns the TTS key, falling back to the OpenAI chat key.
func (c *Config) SynthesisKey() string {
	if c.Speech.TTSKey != "" {
		return c.Speech.TTSKey
	}
	return c.LLM.OpenAIKey
}

// InterviewConfig seeds the runtime configuration when none is stored.
type InterviewConfig struct {
	MaxQuestions           int `env:"MAX_QUESTIONS,            default=5"`
	QuestionTimeoutSeconds int `env:"QUESTION_TIMEOUT_SECONDS, default=120"`
}

// Defaults returns the interview settings as a runtime config.
func (c InterviewConfig) Defaults() domain.RuntimeConfig {
	return domain.RuntimeConfig{
		MaxQuestions:           c.MaxQuestions,
		QuestionTimeoutSeconds: c.QuestionTimeoutSeconds,
	}
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// LoadStorage reads the same environment but only checks the storage
// settings. The admin commands use it since they never issue tokens.
func LoadStorage(ctx context.Context) (*Config, error) {
	cfg, err := decode(ctx, envconfig.OsLookuper())
	if err != nil {
		return nil, err
	}
	if err := cfg.validateStore(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	cfg, err := decode(ctx, lookuper)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("config: LLM_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.LLM.Provider)
	}
	if err := c.Interviews.Defaults().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) validateStore() error {
	switch c.StoreDriver {
	case StoreMongo, StoreMemory:
		return nil
	default:
		return fmt.Errorf("config: STORE_DRIVER must be %q or %q, got %q", StoreMongo, StoreMemory, c.StoreDriver)
	}
}

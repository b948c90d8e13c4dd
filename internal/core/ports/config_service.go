package ports

import (
	"context"

	"github.com/hireflow/interviewer/internal/core/domain"
)

// ConfigUpdate carries a partial config change. Nil fields are left untouched.
type ConfigUpdate struct {
	MaxQuestions           *int
	QuestionTimeoutSeconds *int
}

// ConfigService exposes and changes the runtime interview configuration.
type ConfigService interface {
	Current() domain.RuntimeConfig
	Validate(update ConfigUpdate) error
	Apply(ctx context.Context, update ConfigUpdate) (domain.RuntimeConfig, error)
}

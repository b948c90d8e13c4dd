package domain

import (
	"fmt"
	"time"
)

const (
	MinQuestions = 1
	MaxQuestions = 50

	MinQuestionTimeoutSeconds = 30
	MaxQuestionTimeoutSeconds = 600
)

// RuntimeConfig holds the process-wide interview settings an admin may change
// while the service is running.
type RuntimeConfig struct {
	MaxQuestions           int `json:"max_questions" bson:"max_questions"`
	QuestionTimeoutSeconds int `json:"question_timeout_seconds" bson:"question_timeout_seconds"`
}

// QuestionTimeout returns the per-question deadline as a duration.
func (c RuntimeConfig) QuestionTimeout() time.Duration {
	return time.Duration(c.QuestionTimeoutSeconds) * time.Second
}

// Validate checks both fields against their allowed bounds.
func (c RuntimeConfig) Validate() error {
	if c.MaxQuestions < MinQuestions || c.MaxQuestions > MaxQuestions {
		return fmt.Errorf("%w: max_questions must be between %d and %d", ErrValidation, MinQuestions, MaxQuestions)
	}
	if c.QuestionTimeoutSeconds < MinQuestionTimeoutSeconds || c.QuestionTimeoutSeconds > MaxQuestionTimeoutSeconds {
		return fmt.Errorf("%w: question_timeout_seconds must be between %d and %d",
			ErrValidation, MinQuestionTimeoutSeconds, MaxQuestionTimeoutSeconds)
	}
	return nil
}

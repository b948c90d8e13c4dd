package service

import (
	"context"
	"fmt"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/parser"
	"github.com/hireflow/interviewer/internal/core/ports"
	"github.com/hireflow/interviewer/internal/core/prompts"
)

// Evaluator scores a transcript against the rubric prompt.
type Evaluator struct {
	llm     ports.TextGenerator
	prompts *prompts.Catalogue
}

func NewEvaluator(llm ports.TextGenerator, catalogue *prompts.Catalogue) *Evaluator {
	return &Evaluator{llm: llm, prompts: catalogue}
}

// Evaluate returns the parsed score and reasoning. Malformed model output falls
// back to parser defaults; only a failed generator call is an error.
func (e *Evaluator) Evaluate(ctx context.Context, question, transcript string) (parser.Evaluation, error) {
	p := e.prompts.Evaluation(question, transcript)
	raw, err := e.llm.Generate(ctx, []ports.Message{
		{Role: ports.RoleSystem, Content: p.System},
		{Role: ports.RoleUser, Content: p.User},
	}, p.Temperature)
	if err != nil {
		return parser.Evaluation{}, fmt.Errorf("%w: evaluate answer: %v", domain.ErrUpstream, err)
	}
	return parser.ParseEvaluation(raw), nil
}

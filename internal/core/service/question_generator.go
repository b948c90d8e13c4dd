package service

import (
	"context"
	"fmt"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/parser"
	"github.com/hireflow/interviewer/internal/core/ports"
	"github.com/hireflow/interviewer/internal/core/prompts"
)

// QuestionGenerator asks the text generator for a role's question set.
type QuestionGenerator struct {
	llm     ports.TextGenerator
	prompts *prompts.Catalogue
}

func NewQuestionGenerator(llm ports.TextGenerator, catalogue *prompts.Catalogue) *QuestionGenerator {
	return &QuestionGenerator{llm: llm, prompts: catalogue}
}

// Generate returns exactly n non-empty questions for role. It calls the text
// generator once and never retries.
func (g *QuestionGenerator) Generate(ctx context.Context, role string, n int) ([]string, error) {
	if n < domain.MinQuestions {
		return nil, fmt.Errorf("%w: question count must be positive", domain.ErrValidation)
	}
	p := g.prompts.Questions(role, n)
	raw, err := g.llm.Generate(ctx, []ports.Message{
		{Role: ports.RoleSystem, Content: p.System},
		{Role: ports.RoleUser, Content: p.User},
	}, p.Temperature)
	if err != nil {
		return nil, fmt.Errorf("%w: generate questions: %v", domain.ErrUpstream, err)
	}
	return parser.ParseQuestionList(raw, n), nil
}

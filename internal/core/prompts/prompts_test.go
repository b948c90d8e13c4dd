package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Loads(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 0.8, c.Interviewer.Temperature)
	assert.Equal(t, 0.3, c.Evaluator.Temperature)
}

func TestQuestions_FillsPlaceholders(t *testing.T) {
	c := MustDefault()

	r := c.Questions("QA Engineer", 7)

	assert.Contains(t, r.System, "QA Engineer")
	assert.Contains(t, r.User, "exactly 7 interview questions")
	assert.Contains(t, r.User, "numbered 1-7")
	assert.NotContains(t, r.User, "{count}")
	assert.NotContains(t, r.System, "{role}")
}

func TestEvaluation_FillsPlaceholders(t *testing.T) {
	c := MustDefault()

	r := c.Evaluation("What is TDD?", "Writing tests first.")

	assert.Contains(t, r.System, "SCORE: <Integer 1-5>")
	assert.Equal(t, "**Question:** What is TDD?\n**Candidate Answer:** Writing tests first.", r.User)
	assert.Equal(t, 0.3, r.Temperature)
}

func TestParse_RejectsIncomplete(t *testing.T) {
	_, err := Parse([]byte("interviewer:\n  system: hi\n  user: there\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluator")
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("interviewer: [unterminated"))
	require.Error(t, err)
}

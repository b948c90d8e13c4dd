package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionList_StripsEnumeration(t *testing.T) {
	raw := "1. What is a race condition?\n2) How do you test APIs?\n3- Explain CI.\n4: Describe a bug you fixed."

	got := ParseQuestionList(raw, 4)

	assert.Equal(t, []string{
		"What is a race condition?",
		"How do you test APIs?",
		"Explain CI.",
		"Describe a bug you fixed.",
	}, got)
}

func TestParseQuestionList_DropsBlankAndDecoratedLines(t *testing.T) {
	raw := "\n\n  **1. First question**  \n\n- Second question\n   \n3.\n* 4. Fourth question\r\n"

	got := ParseQuestionList(raw, 3)

	assert.Equal(t, []string{"First question", "Second question", "Fourth question"}, got)
}

func TestParseQuestionList_PadsShortOutput(t *testing.T) {
	got := ParseQuestionList("1. Only one", 3)

	require.Len(t, got, 3)
	assert.Equal(t, "Only one", got[0])
	assert.Equal(t, FillerQuestion, got[1])
	assert.Equal(t, FillerQuestion, got[2])
}

func TestParseQuestionList_TruncatesLongOutput(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&b, "%d. Question %d\n", i, i)
	}

	got := ParseQuestionList(b.String(), 5)

	require.Len(t, got, 5)
	assert.Equal(t, "Question 1", got[0])
	assert.Equal(t, "Question 5", got[4])
}

func TestParseQuestionList_EmptyInput(t *testing.T) {
	got := ParseQuestionList("", 2)
	assert.Equal(t, []string{FillerQuestion, FillerQuestion}, got)
}

func TestParseQuestionList_NonPositiveCount(t *testing.T) {
	assert.Empty(t, ParseQuestionList("1. a\n2. b", 0))
	assert.Empty(t, ParseQuestionList("1. a", -3))
}

func TestParseQuestionList_AlwaysExactlyNNonEmpty(t *testing.T) {
	inputs := []string{
		"",
		"garbage without newlines",
		"1.\n2.\n3.",
		"1. a\n\n\n2. b\n3. c\n4. d\n5. e\n6. f",
		strings.Repeat("7) repeated\n", 80),
	}
	for _, raw := range inputs {
		for n := 1; n <= 50; n++ {
			got := ParseQuestionList(raw, n)
			require.Len(t, got, n, "raw=%q n=%d", raw, n)
			for _, q := range got {
				require.NotEmpty(t, strings.TrimSpace(q), "raw=%q n=%d", raw, n)
			}
		}
	}
}

func TestParseEvaluation_WellFormed(t *testing.T) {
	ev := ParseEvaluation("SCORE: 4\nREASONING: Clear answer with an example.")

	assert.Equal(t, 4, ev.Score)
	assert.Equal(t, "Clear answer with an example.", ev.Reasoning)
}

func TestParseEvaluation_MarkdownAndCase(t *testing.T) {
	ev := ParseEvaluation("**Score:** 5/5\n**Reasoning:** Thorough.")

	assert.Equal(t, 5, ev.Score)
	assert.Equal(t, "Thorough.", ev.Reasoning)
}

func TestParseEvaluation_MultiLineReasoning(t *testing.T) {
	ev := ParseEvaluation("SCORE: 2\nREASONING:\nMentions the topic\nbut misses the key point.")

	assert.Equal(t, 2, ev.Score)
	assert.Equal(t, "Mentions the topic but misses the key point.", ev.Reasoning)
}

func TestParseEvaluation_MissingScoreDefaults(t *testing.T) {
	cases := []string{
		"",
		"The candidate did fine.",
		"SCORE: four\nREASONING: words instead of digits",
		"REASONING: no score line at all",
	}
	for _, raw := range cases {
		ev := ParseEvaluation(raw)
		assert.Equal(t, DefaultScore, ev.Score, "raw=%q", raw)
		assert.NotEmpty(t, ev.Reasoning, "raw=%q", raw)
	}
}

func TestParseEvaluation_MissingReasoningFallsBack(t *testing.T) {
	ev := ParseEvaluation("SCORE: 1")

	assert.Equal(t, 1, ev.Score)
	assert.Equal(t, FallbackReasoning, ev.Reasoning)
}

func TestParseEvaluation_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, MaxScore, ParseEvaluation("SCORE: 9").Score)
	assert.Equal(t, MinScore, ParseEvaluation("SCORE: 0").Score)
	assert.Equal(t, MinScore, ParseEvaluation("SCORE: -4").Score)
}

func TestParseEvaluation_FirstScoreWins(t *testing.T) {
	ev := ParseEvaluation("SCORE: 2\nREASONING: weak\nSCORE: 5")
	assert.Equal(t, 2, ev.Score)
	assert.Equal(t, "weak", ev.Reasoning)
}

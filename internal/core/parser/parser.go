// Package parser turns free-text model output into structured values.
//
// Model output is never trusted to be well-formed. Every function here has a
// deterministic fallback and no error path.
package parser

import (
	"strconv"
	"strings"

	"github.com/hireflow/interviewer/internal/core/domain"
)

const (
	// FillerQuestion pads a question list that came back short.
	FillerQuestion = "Tell me about your experience relevant to this role"

	// DefaultScore is used when an evaluation carries no readable score.
	DefaultScore = 3
	MinScore     = 1
	MaxScore     = domain.MaxRubricScore

	// FallbackReasoning is used when an evaluation carries no reasoning.
	FallbackReasoning = "Unable to parse evaluation response properly."

	scoreMarker     = "SCORE:"
	reasoningMarker = "REASONING:"
)

// Evaluation is a rubric score with the model's justification.
type Evaluation struct {
	Score     int
	Reasoning string
}

// ParseQuestionList extracts exactly n questions from raw, one per line.
// Enumeration markers ("1.", "2)", "3-", "4:") and markdown bullets are
// stripped and blank lines dropped. Short lists are padded with
// FillerQuestion, long ones truncated.
func ParseQuestionList(raw string, n int) []string {
	if n <= 0 {
		return []string{}
	}

	questions := make([]string, 0, n)
	for _, line := range splitLines(raw) {
		if len(questions) == n {
			break
		}
		q := cleanQuestionLine(line)
		if q == "" {
			continue
		}
		questions = append(questions, q)
	}

	for len(questions) < n {
		questions = append(questions, FillerQuestion)
	}
	return questions
}

// ParseEvaluation reads "SCORE: <int>" and "REASONING: <text>" lines from raw.
// Markers are matched case-insensitively and may be decorated with markdown
// emphasis. Reasoning continues over following lines until the next marker.
// Parsed scores are clamped into [MinScore, MaxScore].
func ParseEvaluation(raw string) Evaluation {
	score, haveScore := 0, false
	var reasoning []string
	inReasoning := false

	for _, line := range splitLines(raw) {
		text := stripDecoration(line)
		switch {
		case hasMarker(text, scoreMarker):
			inReasoning = false
			if haveScore {
				continue
			}
			if v, ok := leadingInt(afterMarker(text, scoreMarker)); ok {
				score, haveScore = v, true
			}
		case hasMarker(text, reasoningMarker):
			inReasoning = true
			if rest := afterMarker(text, reasoningMarker); rest != "" {
				reasoning = append(reasoning, rest)
			}
		case inReasoning && text != "":
			reasoning = append(reasoning, text)
		}
	}

	ev := Evaluation{Score: DefaultScore, Reasoning: FallbackReasoning}
	if haveScore {
		ev.Score = clamp(score, MinScore, MaxScore)
	}
	if len(reasoning) > 0 {
		ev.Reasoning = strings.Join(reasoning, " ")
	}
	return ev
}

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.Split(raw, "\n")
}

func cleanQuestionLine(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "*•# ")
	s = stripEnumeration(s)
	s = strings.TrimPrefix(s, "- ")
	s = strings.TrimSpace(strings.Trim(s, "*"))
	return s
}

// stripEnumeration removes a leading run of digits followed by one of
// '.', ')', '-' or ':' and any whitespace after it.
func stripEnumeration(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return s
	}
	switch s[i] {
	case '.', ')', '-', ':':
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

func stripDecoration(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "*#_ ")
	return s
}

func hasMarker(text, marker string) bool {
	return len(text) >= len(marker) && strings.EqualFold(text[:len(marker)], marker)
}

func afterMarker(text, marker string) string {
	rest := text[len(marker):]
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(rest), "*_"))
}

// leadingInt parses the optional sign and digit run at the start of s, so
// "4/5" and "4." both yield 4.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

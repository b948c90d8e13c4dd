// Package scoring aggregates per-answer rubric scores into interview totals.
package scoring

import (
	"math"

	"github.com/hireflow/interviewer/internal/core/domain"
)

// Statistics summarises the scored answers of one interview. Values are kept
// unrounded; call Rounded before presenting them.
type Statistics struct {
	TotalQuestions       int
	AnswersSubmitted     int
	TotalScore           float64
	MaxPossibleScore     int
	AverageScore         float64
	CompletionPercentage float64
}

// Aggregate computes totals for questionCount questions and the given scores.
// The average is taken over all questions, not only answered ones, so an
// unfinished interview is penalised for its missing answers.
func Aggregate(questionCount int, scores []int) Statistics {
	st := Statistics{
		TotalQuestions:   questionCount,
		AnswersSubmitted: len(scores),
		MaxPossibleScore: questionCount * domain.MaxRubricScore,
	}
	for _, s := range scores {
		st.TotalScore += float64(s)
	}
	if questionCount > 0 {
		st.AverageScore = st.TotalScore / float64(questionCount)
		st.CompletionPercentage = 100 * float64(len(scores)) / float64(questionCount)
	}
	return st
}

// FromAnswers is Aggregate over the scores of answers.
func FromAnswers(questionCount int, answers []domain.Answer) Statistics {
	scores := make([]int, len(answers))
	for i, a := range answers {
		scores[i] = a.Score
	}
	return Aggregate(questionCount, scores)
}

// Rounded returns a copy with fractional values rounded to two decimals.
func (s Statistics) Rounded() Statistics {
	s.TotalScore = round2(s.TotalScore)
	s.AverageScore = round2(s.AverageScore)
	s.CompletionPercentage = round2(s.CompletionPercentage)
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

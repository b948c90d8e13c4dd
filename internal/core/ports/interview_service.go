package ports

import (
	"context"
	"time"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/scoring"
)

// StartInterviewInput carries the candidate identity and the role applied for.
type StartInterviewInput struct {
	Email     string
	FirstName string
	LastName  string
	Role      string
}

// StartInterviewResult is returned once questions are generated and stored.
type StartInterviewResult struct {
	InterviewID            string
	CandidateID            string
	Role                   string
	TotalQuestions         int
	FirstQuestion          domain.Question
	QuestionTimeoutSeconds int
}

// NextQuestionResult is the current question, or Completed when none remains.
type NextQuestionResult struct {
	Completed              bool
	Question               *domain.Question
	QuestionNumber         int
	TotalQuestions         int
	QuestionTimeoutSeconds int
}

// SubmitAnswerResult is the outcome of one recorded answer.
type SubmitAnswerResult struct {
	Transcript        string
	Score             int
	Reasoning         string
	NextQuestion      *domain.Question // nil once completed
	Completed         bool
	QuestionsAnswered int
	TotalQuestions    int
}

// AnsweredQuestion pairs an answer with the text of its question.
type AnsweredQuestion struct {
	QuestionOrder int
	Question      string
	Transcript    string
	Score         int
	Feedback      string
	CreatedAt     time.Time
}

// InterviewResults is the aggregate view of one interview.
type InterviewResults struct {
	Interview  *domain.Interview
	Candidate  *domain.Candidate // nil if the candidate record is missing
	Questions  []domain.Question
	Answers    []AnsweredQuestion
	Statistics scoring.Statistics // unrounded
}

// InterviewService defines the candidate-facing interview use cases.
type InterviewService interface {
	Start(ctx context.Context, input StartInterviewInput) (*StartInterviewResult, error)
	NextQuestion(ctx context.Context, interviewID string) (*NextQuestionResult, error)
	SubmitAnswer(ctx context.Context, interviewID string, audio Audio) (*SubmitAnswerResult, error)
	Results(ctx context.Context, interviewID string) (*InterviewResults, error)
	// QuestionAudio returns mp3 speech for the current question.
	QuestionAudio(ctx context.Context, interviewID string) ([]byte, error)
}

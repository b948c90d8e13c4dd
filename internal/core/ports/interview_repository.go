package ports

import (
	"context"
	"time"

	"github.com/hireflow/interviewer/internal/core/domain"
)

// ListInterviewsFilter carries the query parameters for listing interviews.
type ListInterviewsFilter struct {
	Role         string   // optional: exact match
	CandidateIDs []string // optional: restrict to these candidates
	Page         int      // 1-based
	Limit        int
}

// AdvanceInput describes one step of an interview's progress.
type AdvanceInput struct {
	InterviewID   string
	ExpectedIndex int
	Score         int
	Completed     bool
	// FinalScore is the session total stamped when Completed is set.
	FinalScore int
	At         time.Time
}

// InterviewRepository defines persistence for interview sessions.
type InterviewRepository interface {
	Create(ctx context.Context, i *domain.Interview) error
	// FindByID returns domain.ErrInterviewNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.Interview, error)
	// Advance atomically increments current_index and adds the score, but only
	// while the stored index equals ExpectedIndex and the interview is in
	// progress. When Completed is set it also flips the status and stamps the
	// end time. A lost compare returns domain.ErrStaleQuestion.
	Advance(ctx context.Context, in AdvanceInput) (*domain.Interview, error)
	// List returns a page of interviews, newest first, and the total count.
	List(ctx context.Context, filter ListInterviewsFilter) ([]*domain.Interview, int64, error)
}

// QuestionRepository defines persistence for interview questions.
type QuestionRepository interface {
	CreateMany(ctx context.Context, questions []domain.Question) error
	// ListByInterview returns questions ordered by their 1-based order.
	ListByInterview(ctx context.Context, interviewID string) ([]domain.Question, error)
	// FindByOrder returns domain.ErrQuestionNotFound when absent.
	FindByOrder(ctx context.Context, interviewID string, order int) (*domain.Question, error)
}

// AnswerRepository defines persistence for evaluated answers.
type AnswerRepository interface {
	// Insert claims the (interview, question_order) slot. A taken slot returns
	// domain.ErrStaleQuestion.
	Insert(ctx context.Context, a *domain.Answer) error
	// ListByInterview returns answers ordered by question order.
	ListByInterview(ctx context.Context, interviewID string) ([]domain.Answer, error)
	Delete(ctx context.Context, id string) error
}

// ConfigStore persists the runtime interview configuration.
type ConfigStore interface {
	// Load returns domain.ErrConfigNotFound when nothing was saved yet.
	Load(ctx context.Context) (*domain.RuntimeConfig, error)
	Save(ctx context.Context, cfg domain.RuntimeConfig) error
}

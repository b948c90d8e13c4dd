package ports

import (
	"context"
	"time"

	"github.com/hireflow/interviewer/internal/core/domain"
)

// ListInterviewsInput carries the admin list query.
type ListInterviewsInput struct {
	Role  string
	Email string // case-insensitive substring of the candidate email
	Page  int
	Limit int
}

// InterviewSummary is the lightweight view used in admin list responses.
type InterviewSummary struct {
	ID            string
	Role          string
	Status        domain.InterviewStatus
	CurrentIndex  int
	QuestionCount int
	TotalScore    int
	FinalScore    *int
	StartTime     time.Time
	EndTime       *time.Time
	CreatedAt     time.Time
	Candidate     *domain.Candidate
}

// ListInterviewsResult is returned by ListInterviews.
type ListInterviewsResult struct {
	Items      []InterviewSummary
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AdminService defines the admin review use cases.
type AdminService interface {
	ListInterviews(ctx context.Context, input ListInterviewsInput) (*ListInterviewsResult, error)
	GetInterview(ctx context.Context, interviewID string) (*InterviewResults, error)
}

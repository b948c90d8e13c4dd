package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hireflow/interviewer/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AdminService implements the admin review use cases.
type AdminService struct {
	candidates ports.CandidateRepository
	interviews ports.InterviewRepository
	sessions   *SessionMachine
	logger     zerolog.Logger
}

func NewAdminService(candidates ports.CandidateRepository, interviews ports.InterviewRepository, sessions *SessionMachine, logger zerolog.Logger) *AdminService {
	return &AdminService{candidates: candidates, interviews: interviews, sessions: sessions, logger: logger}
}

// ListInterviews returns a page of interviews, newest first. Role matches
// exactly; email matches any candidate whose address contains it.
func (s *AdminService) ListInterviews(ctx context.Context, input ports.ListInterviewsInput) (*ports.ListInterviewsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	result := &ports.ListInterviewsResult{Items: []ports.InterviewSummary{}, Page: page, Limit: limit}

	filter := ports.ListInterviewsFilter{
		Role:  strings.TrimSpace(input.Role),
		Page:  page,
		Limit: limit,
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		ids, err := s.candidates.SearchByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return result, nil
		}
		filter.CandidateIDs = ids
	}

	interviews, total, err := s.interviews.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(interviews))
	for _, iv := range interviews {
		ids = append(ids, iv.CandidateID)
	}
	candidates, err := s.candidates.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, iv := range interviews {
		result.Items = append(result.Items, ports.InterviewSummary{
			ID:            iv.ID,
			Role:          iv.Role,
			Status:        iv.Status,
			CurrentIndex:  iv.CurrentIndex,
			QuestionCount: iv.QuestionCount,
			TotalScore:    iv.TotalScore,
			FinalScore:    iv.FinalScore,
			StartTime:     iv.StartTime,
			EndTime:       iv.EndTime,
			CreatedAt:     iv.CreatedAt,
			Candidate:     candidates[iv.CandidateID],
		})
	}
	result.Total = total
	result.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	return result, nil
}

// GetInterview returns the full detail of one interview.
func (s *AdminService) GetInterview(ctx context.Context, interviewID string) (*ports.InterviewResults, error) {
	return s.sessions.Results(ctx, interviewID)
}

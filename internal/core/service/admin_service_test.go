package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/ports"
	"github.com/hireflow/interviewer/internal/infrastructure/db/memory"
)

func seededAdminService(t *testing.T) *AdminService {
	t.Helper()
	store := memory.New()
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	candidates := []domain.Candidate{
		{ID: "c-ana", Email: "ana@example.com", FirstName: "Ana"},
		{ID: "c-bob", Email: "bob@corp.io", FirstName: "Bob"},
	}
	for i := range candidates {
		if err := store.Candidates().Create(ctx, &candidates[i]); err != nil {
			t.Fatalf("seed candidate: %v", err)
		}
	}
	interviews := []domain.Interview{
		{ID: "iv-1", CandidateID: "c-ana", Role: "QA Engineer", QuestionCount: 5, Status: domain.StatusInProgress, CreatedAt: base},
		{ID: "iv-2", CandidateID: "c-bob", Role: "QA Engineer", QuestionCount: 5, Status: domain.StatusCompleted, CreatedAt: base.Add(time.Hour)},
		{ID: "iv-3", CandidateID: "c-ana", Role: "Backend Developer", QuestionCount: 5, Status: domain.StatusInProgress, CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range interviews {
		if err := store.Interviews().Create(ctx, &interviews[i]); err != nil {
			t.Fatalf("seed interview: %v", err)
		}
	}

	sessions := newSessionMachine(store, store.Interviews())
	return NewAdminService(store.Candidates(), store.Interviews(), sessions, zerolog.Nop())
}

func TestAdminService_ListInterviews_Defaults(t *testing.T) {
	svc := seededAdminService(t)

	res, err := svc.ListInterviews(context.Background(), ports.ListInterviewsInput{})
	if err != nil {
		t.Fatalf("ListInterviews returned error: %v", err)
	}
	if res.Page != 1 || res.Limit != defaultPageLimit || res.Total != 3 || res.TotalPages != 1 {
		t.Fatalf("unexpected pagination: %+v", res)
	}
	if res.Items[0].ID != "iv-3" || res.Items[2].ID != "iv-1" {
		t.Fatalf("expected newest first, got %s..%s", res.Items[0].ID, res.Items[2].ID)
	}
	if res.Items[0].Candidate == nil || res.Items[0].Candidate.Email != "ana@example.com" {
		t.Fatalf("expected candidate attached, got %+v", res.Items[0].Candidate)
	}
}

func TestAdminService_ListInterviews_Filters(t *testing.T) {
	svc := seededAdminService(t)
	ctx := context.Background()

	res, _ := svc.ListInterviews(ctx, ports.ListInterviewsInput{Role: "QA Engineer"})
	if res.Total != 2 {
		t.Fatalf("expected 2 QA interviews, got %d", res.Total)
	}

	res, _ = svc.ListInterviews(ctx, ports.ListInterviewsInput{Email: "ANA@"})
	if res.Total != 2 || res.Items[0].ID != "iv-3" {
		t.Fatalf("expected Ana's interviews, got %+v", res.Items)
	}

	res, _ = svc.ListInterviews(ctx, ports.ListInterviewsInput{Email: "ana", Role: "QA Engineer"})
	if res.Total != 1 || res.Items[0].ID != "iv-1" {
		t.Fatalf("expected combined filter to match iv-1, got %+v", res.Items)
	}

	res, err := svc.ListInterviews(ctx, ports.ListInterviewsInput{Email: "nobody"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 0 || len(res.Items) != 0 || res.Items == nil {
		t.Fatalf("expected empty non-nil page, got %+v", res)
	}
}

func TestAdminService_ListInterviews_Paging(t *testing.T) {
	svc := seededAdminService(t)

	res, _ := svc.ListInterviews(context.Background(), ports.ListInterviewsInput{Page: 2, Limit: 2})
	if res.TotalPages != 2 || len(res.Items) != 1 || res.Items[0].ID != "iv-1" {
		t.Fatalf("unexpected second page: %+v", res)
	}

	res, _ = svc.ListInterviews(context.Background(), ports.ListInterviewsInput{Page: 1, Limit: 500})
	if res.Limit != maxPageLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxPageLimit, res.Limit)
	}
}

func TestAdminService_GetInterview(t *testing.T) {
	svc := seededAdminService(t)

	res, err := svc.GetInterview(context.Background(), "iv-2")
	if err != nil {
		t.Fatalf("GetInterview returned error: %v", err)
	}
	if res.Interview.ID != "iv-2" || res.Candidate == nil || res.Candidate.FirstName != "Bob" {
		t.Fatalf("unexpected detail: %+v", res)
	}
}

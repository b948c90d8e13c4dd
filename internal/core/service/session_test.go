package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/parser"
	"github.com/hireflow/interviewer/internal/core/ports"
	"github.com/hireflow/interviewer/internal/infrastructure/db/memory"
	"github.com/hireflow/interviewer/internal/pkg/keylock"
)

// lostCASInterviews wraps a repository and makes every Advance lose its
// compare-and-swap, as if another replica had advanced first.
type lostCASInterviews struct {
	ports.InterviewRepository
}

func (lostCASInterviews) Advance(context.Context, ports.AdvanceInput) (*domain.Interview, error) {
	return nil, domain.ErrStaleQuestion
}

func newSessionMachine(store *memory.Store, interviews ports.InterviewRepository) *SessionMachine {
	return NewSessionMachine(SessionStore{
		Candidates: store.Candidates(),
		Interviews: interviews,
		Questions:  store.Questions(),
		Answers:    store.Answers(),
	}, keylock.New(4), zerolog.Nop())
}

func TestSessionMachine_Create(t *testing.T) {
	store := memory.New()
	m := newSessionMachine(store, store.Interviews())

	iv, qs, err := m.Create(context.Background(), "c-1", "QA Engineer", []string{"a?", "b?", "c?"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if iv.Status != domain.StatusInProgress || iv.CurrentIndex != 0 || iv.TotalScore != 0 || iv.QuestionCount != 3 {
		t.Fatalf("unexpected interview: %+v", iv)
	}
	for i, q := range qs {
		if q.Order != i+1 || q.InterviewID != iv.ID || q.Role != "QA Engineer" {
			t.Fatalf("unexpected question %d: %+v", i, q)
		}
	}

	if _, _, err := m.Create(context.Background(), "c-1", "QA Engineer", nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty question list, got %v", err)
	}
}

func TestSessionMachine_AdvanceInvariant(t *testing.T) {
	const m = 4
	scores := []int{5, 1, 3, 4}

	for k := 0; k <= m; k++ {
		store := memory.New()
		sm := newSessionMachine(store, store.Interviews())
		ctx := context.Background()
		iv, _, err := sm.Create(ctx, "c-1", "QA Engineer", []string{"q1", "q2", "q3", "q4"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		sum := 0
		for i := 0; i < k; i++ {
			_, q, err := sm.CurrentQuestion(ctx, iv.ID)
			if err != nil || q == nil {
				t.Fatalf("k=%d step %d: no current question (%v)", k, i, err)
			}
			if _, err := sm.Advance(ctx, q, "answer", parser.Evaluation{Score: scores[i], Reasoning: "r"}); err != nil {
				t.Fatalf("k=%d step %d: Advance returned error: %v", k, i, err)
			}
			sum += scores[i]
		}

		got, _ := store.Interviews().FindByID(ctx, iv.ID)
		answers, _ := store.Answers().ListByInterview(ctx, iv.ID)
		if got.CurrentIndex != k {
			t.Fatalf("k=%d: current_index=%d", k, got.CurrentIndex)
		}
		if got.IsCompleted() != (k == m) {
			t.Fatalf("k=%d: completed=%v", k, got.IsCompleted())
		}
		if got.TotalScore != sum || len(answers) != k {
			t.Fatalf("k=%d: total=%d want %d, answers=%d", k, got.TotalScore, sum, len(answers))
		}
		if k == m && (got.FinalScore == nil || *got.FinalScore != sum) {
			t.Fatalf("k=%d: final score=%v want %d", k, got.FinalScore, sum)
		}
		if k < m && got.FinalScore != nil {
			t.Fatalf("k=%d: final score set before completion: %d", k, *got.FinalScore)
		}
		for i, a := range answers {
			if a.QuestionOrder != i+1 {
				t.Fatalf("k=%d: answers are not a prefix: %+v", k, answers)
			}
		}
		_, q, err := sm.CurrentQuestion(ctx, iv.ID)
		if err != nil {
			t.Fatalf("k=%d: CurrentQuestion: %v", k, err)
		}
		if (q == nil) != (k == m) {
			t.Fatalf("k=%d: unexpected current question %+v", k, q)
		}
	}
}

func TestSessionMachine_AdvanceRejectsStaleAndCompleted(t *testing.T) {
	store := memory.New()
	sm := newSessionMachine(store, store.Interviews())
	ctx := context.Background()
	_, qs, _ := sm.Create(ctx, "c-1", "QA Engineer", []string{"q1", "q2"})
	eval := parser.Evaluation{Score: 3, Reasoning: "ok"}

	if _, err := sm.Advance(ctx, &qs[1], "skip ahead", eval); !errors.Is(err, domain.ErrStaleQuestion) {
		t.Fatalf("expected ErrStaleQuestion for out-of-order question, got %v", err)
	}
	if _, err := sm.Advance(ctx, &qs[0], "a", eval); err != nil {
		t.Fatalf("advance 1: %v", err)
	}
	if _, err := sm.Advance(ctx, &qs[0], "again", eval); !errors.Is(err, domain.ErrStaleQuestion) {
		t.Fatalf("expected ErrStaleQuestion for replay, got %v", err)
	}
	res, err := sm.Advance(ctx, &qs[1], "b", eval)
	if err != nil || !res.Interview.IsCompleted() {
		t.Fatalf("expected completion, got %+v err=%v", res, err)
	}
	if _, err := sm.Advance(ctx, &qs[1], "b", eval); !errors.Is(err, domain.ErrInterviewCompleted) {
		t.Fatalf("expected ErrInterviewCompleted, got %v", err)
	}

	ghost := domain.Question{InterviewID: "missing", Order: 1}
	if _, err := sm.Advance(ctx, &ghost, "x", eval); !errors.Is(err, domain.ErrInterviewNotFound) {
		t.Fatalf("expected ErrInterviewNotFound, got %v", err)
	}
}

func TestSessionMachine_LostCompareReleasesAnswerSlot(t *testing.T) {
	store := memory.New()
	sm := newSessionMachine(store, lostCASInterviews{store.Interviews()})
	ctx := context.Background()
	iv, qs, _ := sm.Create(ctx, "c-1", "QA Engineer", []string{"q1", "q2"})

	_, err := sm.Advance(ctx, &qs[0], "a", parser.Evaluation{Score: 4, Reasoning: "r"})
	if !errors.Is(err, domain.ErrStaleQuestion) {
		t.Fatalf("expected ErrStaleQuestion, got %v", err)
	}

	answers, _ := store.Answers().ListByInterview(ctx, iv.ID)
	if len(answers) != 0 {
		t.Fatalf("expected answer slot released, got %+v", answers)
	}
	got, _ := store.Interviews().FindByID(ctx, iv.ID)
	if got.CurrentIndex != 0 || got.TotalScore != 0 {
		t.Fatalf("expected untouched interview, got %+v", got)
	}
}

func TestSessionMachine_AdvanceReplacesOrphanedAnswer(t *testing.T) {
	store := memory.New()
	sm := newSessionMachine(store, store.Interviews())
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return now }
	iv, qs, _ := sm.Create(ctx, "c-1", "QA Engineer", []string{"q1", "q2"})

	// An answer whose writer died before moving current_index.
	orphan := &domain.Answer{
		ID: "orphan", InterviewID: iv.ID, QuestionID: qs[0].ID, QuestionOrder: 1,
		Transcript: "lost", Score: 1, CreatedAt: now.Add(-2 * orphanGrace),
	}
	if err := store.Answers().Insert(ctx, orphan); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := sm.Advance(ctx, &qs[0], "retry", parser.Evaluation{Score: 4, Reasoning: "r"})
	if err != nil {
		t.Fatalf("expected retry to recover the slot, got %v", err)
	}
	if res.Interview.CurrentIndex != 1 || res.Interview.TotalScore != 4 {
		t.Fatalf("unexpected interview: %+v", res.Interview)
	}
	answers, _ := store.Answers().ListByInterview(ctx, iv.ID)
	if len(answers) != 1 || answers[0].ID == "orphan" || answers[0].Transcript != "retry" {
		t.Fatalf("expected orphan replaced, got %+v", answers)
	}
}

func TestSessionMachine_AdvanceKeepsRecentSlotHolder(t *testing.T) {
	store := memory.New()
	sm := newSessionMachine(store, store.Interviews())
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return now }
	iv, qs, _ := sm.Create(ctx, "c-1", "QA Engineer", []string{"q1", "q2"})

	// Another replica claimed the slot moments ago and may still advance.
	inFlight := &domain.Answer{
		ID: "in-flight", InterviewID: iv.ID, QuestionID: qs[0].ID, QuestionOrder: 1,
		Transcript: "other", Score: 2, CreatedAt: now.Add(-time.Second),
	}
	if err := store.Answers().Insert(ctx, inFlight); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := sm.Advance(ctx, &qs[0], "mine", parser.Evaluation{Score: 4, Reasoning: "r"}); !errors.Is(err, domain.ErrStaleQuestion) {
		t.Fatalf("expected ErrStaleQuestion, got %v", err)
	}
	answers, _ := store.Answers().ListByInterview(ctx, iv.ID)
	if len(answers) != 1 || answers[0].ID != "in-flight" {
		t.Fatalf("expected in-flight answer kept, got %+v", answers)
	}
}

func TestSessionMachine_ResultsWithoutCandidate(t *testing.T) {
	store := memory.New()
	sm := newSessionMachine(store, store.Interviews())
	ctx := context.Background()
	iv, qs, _ := sm.Create(ctx, "unknown-candidate", "QA Engineer", []string{"q1", "q2"})
	if _, err := sm.Advance(ctx, &qs[0], "a", parser.Evaluation{Score: 5, Reasoning: "great"}); err != nil {
		t.Fatalf("advance: %v", err)
	}

	res, err := sm.Results(ctx, iv.ID)
	if err != nil {
		t.Fatalf("Results returned error: %v", err)
	}
	if res.Candidate != nil {
		t.Fatalf("expected nil candidate, got %+v", res.Candidate)
	}
	st := res.Statistics.Rounded()
	if st.TotalScore != 5 || st.AverageScore != 2.5 || st.CompletionPercentage != 50 || st.MaxPossibleScore != 10 {
		t.Fatalf("unexpected statistics: %+v", st)
	}
	if len(res.Questions) != 2 || len(res.Answers) != 1 || res.Answers[0].Question != "q1" {
		t.Fatalf("unexpected detail: %+v", res)
	}

	if _, err := sm.Results(ctx, "missing"); !errors.Is(err, domain.ErrInterviewNotFound) {
		t.Fatalf("expected ErrInterviewNotFound, got %v", err)
	}
}

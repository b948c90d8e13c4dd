package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/parser"
	"github.com/hireflow/interviewer/internal/core/ports"
	"github.com/hireflow/interviewer/internal/core/scoring"
	"github.com/hireflow/interviewer/internal/pkg/keylock"
)

// orphanGrace is how old an answer must be before a slot holder that never
// advanced the interview is treated as dead. It exceeds any single store call.
const orphanGrace = time.Minute

// SessionStore groups the repositories a SessionMachine works on.
type SessionStore struct {
	Candidates ports.CandidateRepository
	Interviews ports.InterviewRepository
	Questions  ports.QuestionRepository
	Answers    ports.AnswerRepository
}

// AdvanceResult is the state after an answer was recorded.
type AdvanceResult struct {
	Interview *domain.Interview
	Answer    *domain.Answer
}

// SessionMachine owns interview progress. Advance is the only operation that
// mutates a session after creation.
//
// Advancing is serialised per interview in-process and guarded in storage by
// the unique answer slot plus a compare-and-swap on current_index, so two
// replicas cannot both record an answer for the same question either.
type SessionMachine struct {
	store  SessionStore
	locks  *keylock.Striped
	logger zerolog.Logger
	now    func() time.Time
}

func NewSessionMachine(store SessionStore, locks *keylock.Striped, logger zerolog.Logger) *SessionMachine {
	if locks == nil {
		locks = keylock.New(0)
	}
	return &SessionMachine{store: store, locks: locks, logger: logger, now: time.Now}
}

// Create stores a new in-progress interview with its questions. The question
// list must already have its final size.
func (m *SessionMachine) Create(ctx context.Context, candidateID, role string, questions []string) (*domain.Interview, []domain.Question, error) {
	if len(questions) == 0 {
		return nil, nil, fmt.Errorf("%w: interview needs at least one question", domain.ErrValidation)
	}

	now := m.now().UTC()
	interview := &domain.Interview{
		ID:            uuid.NewString(),
		CandidateID:   candidateID,
		Role:          role,
		QuestionCount: len(questions),
		Status:        domain.StatusInProgress,
		StartTime:     now,
		CreatedAt:     now,
	}

	qs := make([]domain.Question, len(questions))
	for i, content := range questions {
		qs[i] = domain.Question{
			ID:          uuid.NewString(),
			InterviewID: interview.ID,
			Role:        role,
			Content:     content,
			Order:       i + 1,
		}
	}

	// Questions go first so a visible interview always has its full set.
	if err := m.store.Questions.CreateMany(ctx, qs); err != nil {
		return nil, nil, fmt.Errorf("store questions: %w", err)
	}
	if err := m.store.Interviews.Create(ctx, interview); err != nil {
		return nil, nil, fmt.Errorf("store interview: %w", err)
	}
	return interview, qs, nil
}

// CurrentQuestion returns the interview and its pending question. The question
// is nil once every question has been answered.
func (m *SessionMachine) CurrentQuestion(ctx context.Context, interviewID string) (*domain.Interview, *domain.Question, error) {
	interview, err := m.store.Interviews.FindByID(ctx, interviewID)
	if err != nil {
		return nil, nil, err
	}
	if !interview.HasPendingQuestion() {
		return interview, nil, nil
	}

	q, err := m.Question(ctx, interviewID, interview.CurrentIndex+1)
	if err != nil {
		return nil, nil, err
	}
	return interview, q, nil
}

// Question returns the question at the 1-based order.
func (m *SessionMachine) Question(ctx context.Context, interviewID string, order int) (*domain.Question, error) {
	q, err := m.store.Questions.FindByOrder(ctx, interviewID, order)
	if errors.Is(err, domain.ErrQuestionNotFound) {
		return nil, fmt.Errorf("%w: interview %s has no question %d", domain.ErrInvariant, interviewID, order)
	}
	return q, err
}

// Advance records the evaluated answer for question and moves the interview
// forward. It fails without mutation when the interview is unknown, completed
// or no longer positioned at question.
func (m *SessionMachine) Advance(ctx context.Context, question *domain.Question, transcript string, eval parser.Evaluation) (*AdvanceResult, error) {
	unlock := m.locks.Lock(question.InterviewID)
	defer unlock()

	interview, err := m.store.Interviews.FindByID(ctx, question.InterviewID)
	if err != nil {
		return nil, err
	}
	expected := question.Order - 1
	if interview.IsCompleted() {
		return nil, domain.ErrInterviewCompleted
	}
	if !interview.CanAdvanceFrom(expected) {
		return nil, domain.ErrStaleQuestion
	}

	now := m.now().UTC()
	answer := &domain.Answer{
		ID:            uuid.NewString(),
		InterviewID:   interview.ID,
		QuestionID:    question.ID,
		QuestionOrder: question.Order,
		Transcript:    transcript,
		Score:         eval.Score,
		Feedback:      eval.Reasoning,
		CreatedAt:     now,
	}
	if err := m.claimSlot(ctx, answer); err != nil {
		return nil, err
	}

	completed := expected+1 == interview.QuestionCount
	in := ports.AdvanceInput{
		InterviewID:   interview.ID,
		ExpectedIndex: expected,
		Score:         eval.Score,
		Completed:     completed,
		At:            now,
	}
	if completed {
		in.FinalScore = interview.TotalScore + eval.Score
	}
	updated, err := m.store.Interviews.Advance(ctx, in)
	if err != nil {
		// Release the slot so a retry of the same submission can succeed.
		if delErr := m.store.Answers.Delete(context.WithoutCancel(ctx), answer.ID); delErr != nil {
			m.logger.Error().Err(delErr).
				Str("interview_id", interview.ID).
				Str("answer_id", answer.ID).
				Msg("failed to release answer slot")
		}
		return nil, m.raceOutcome(ctx, interview.ID, err)
	}
	return &AdvanceResult{Interview: updated, Answer: answer}, nil
}

// claimSlot inserts answer into its question slot. The caller has already
// seen the interview positioned at that question, so a taken slot older than
// orphanGrace belongs to a writer that died before its compare-and-swap; it
// is replaced. A younger one may still be mid-advance on another replica.
func (m *SessionMachine) claimSlot(ctx context.Context, answer *domain.Answer) error {
	err := m.store.Answers.Insert(ctx, answer)
	if !errors.Is(err, domain.ErrStaleQuestion) {
		return err
	}

	answers, listErr := m.store.Answers.ListByInterview(ctx, answer.InterviewID)
	if listErr != nil {
		return listErr
	}
	for _, existing := range answers {
		if existing.QuestionOrder != answer.QuestionOrder {
			continue
		}
		if answer.CreatedAt.Sub(existing.CreatedAt) < orphanGrace {
			return domain.ErrStaleQuestion
		}
		if err := m.store.Answers.Delete(ctx, existing.ID); err != nil {
			return err
		}
		m.logger.Warn().
			Str("interview_id", answer.InterviewID).
			Str("answer_id", existing.ID).
			Int("question_order", existing.QuestionOrder).
			Msg("replacing orphaned answer")
		return m.store.Answers.Insert(ctx, answer)
	}
	return err
}

// raceOutcome maps a lost compare-and-swap to the state that won it.
func (m *SessionMachine) raceOutcome(ctx context.Context, interviewID string, err error) error {
	if !errors.Is(err, domain.ErrStaleQuestion) {
		return err
	}
	current, findErr := m.store.Interviews.FindByID(ctx, interviewID)
	if findErr == nil && current.IsCompleted() {
		return domain.ErrInterviewCompleted
	}
	return err
}

// Results assembles the aggregate view of an interview. A missing candidate
// record leaves Candidate nil rather than failing the whole view.
func (m *SessionMachine) Results(ctx context.Context, interviewID string) (*ports.InterviewResults, error) {
	interview, err := m.store.Interviews.FindByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	var (
		questions []domain.Question
		answers   []domain.Answer
		candidate *domain.Candidate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = m.store.Questions.ListByInterview(gctx, interviewID)
		return err
	})
	g.Go(func() error {
		var err error
		answers, err = m.store.Answers.ListByInterview(gctx, interviewID)
		return err
	})
	g.Go(func() error {
		c, err := m.store.Candidates.FindByID(gctx, interview.CandidateID)
		if errors.Is(err, domain.ErrCandidateNotFound) {
			return nil
		}
		candidate = c
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	content := make(map[int]string, len(questions))
	for _, q := range questions {
		content[q.Order] = q.Content
	}
	answered := make([]ports.AnsweredQuestion, len(answers))
	for i, a := range answers {
		answered[i] = ports.AnsweredQuestion{
			QuestionOrder: a.QuestionOrder,
			Question:      content[a.QuestionOrder],
			Transcript:    a.Transcript,
			Score:         a.Score,
			Feedback:      a.Feedback,
			CreatedAt:     a.CreatedAt,
		}
	}

	return &ports.InterviewResults{
		Interview:  interview,
		Candidate:  candidate,
		Questions:  questions,
		Answers:    answered,
		Statistics: scoring.FromAnswers(interview.QuestionCount, answers),
	}, nil
}

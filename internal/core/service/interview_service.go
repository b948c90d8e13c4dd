package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/parser"
	"github.com/hireflow/interviewer/internal/core/ports"
)

// ConfigReader exposes the runtime configuration snapshot.
type ConfigReader interface {
	Current() domain.RuntimeConfig
}

// InterviewDeps are the collaborators of an InterviewService.
type InterviewDeps struct {
	Candidates  ports.CandidateRepository
	Sessions    *SessionMachine
	Generator   *QuestionGenerator
	Evaluator   *Evaluator
	Transcriber ports.Transcriber
	Speech      ports.SpeechSynthesizer
	AudioCache  ports.AudioCache
	Config      ConfigReader
}

// InterviewService implements the candidate-facing interview flow.
type InterviewService struct {
	deps   InterviewDeps
	logger zerolog.Logger
	now    func() time.Time
}

func NewInterviewService(deps InterviewDeps, logger zerolog.Logger) *InterviewService {
	return &InterviewService{deps: deps, logger: logger, now: time.Now}
}

// Start generates the question set for the role, registers or refreshes the
// candidate and opens a new session.
func (s *InterviewService) Start(ctx context.Context, input ports.StartInterviewInput) (*ports.StartInterviewResult, error) {
	input.Email = normalizeEmail(input.Email)
	input.Role = strings.TrimSpace(input.Role)
	if !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: email is invalid", domain.ErrValidation)
	}
	if input.Role == "" {
		return nil, fmt.Errorf("%w: role is required", domain.ErrValidation)
	}

	cfg := s.deps.Config.Current()
	genCtx, cancel := context.WithTimeout(ctx, cfg.QuestionTimeout())
	questions, err := s.deps.Generator.Generate(genCtx, input.Role, cfg.MaxQuestions)
	cancel()
	if err != nil {
		return nil, err
	}

	candidate, err := s.upsertCandidate(ctx, input)
	if err != nil {
		return nil, err
	}

	interview, qs, err := s.deps.Sessions.Create(ctx, candidate.ID, input.Role, questions)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("interview_id", interview.ID).
		Str("candidate_id", candidate.ID).
		Str("role", interview.Role).
		Int("questions", interview.QuestionCount).
		Msg("interview started")

	return &ports.StartInterviewResult{
		InterviewID:            interview.ID,
		CandidateID:            candidate.ID,
		Role:                   interview.Role,
		TotalQuestions:         interview.QuestionCount,
		FirstQuestion:          qs[0],
		QuestionTimeoutSeconds: cfg.QuestionTimeoutSeconds,
	}, nil
}

func (s *InterviewService) upsertCandidate(ctx context.Context, input ports.StartInterviewInput) (*domain.Candidate, error) {
	existing, err := s.deps.Candidates.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return s.patchNames(ctx, existing, input)
	case !errors.Is(err, domain.ErrCandidateNotFound):
		return nil, err
	}

	candidate := &domain.Candidate{
		ID:        uuid.NewString(),
		Email:     input.Email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		CreatedAt: s.now().UTC(),
	}
	err = s.deps.Candidates.Create(ctx, candidate)
	if errors.Is(err, domain.ErrCandidateExists) {
		// Lost a concurrent first start for the same email.
		existing, err = s.deps.Candidates.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		return s.patchNames(ctx, existing, input)
	}
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

func (s *InterviewService) patchNames(ctx context.Context, c *domain.Candidate, input ports.StartInterviewInput) (*domain.Candidate, error) {
	first := strings.TrimSpace(input.FirstName)
	last := strings.TrimSpace(input.LastName)
	if (first == "" || first == c.FirstName) && (last == "" || last == c.LastName) {
		return c, nil
	}
	if err := s.deps.Candidates.UpdateNames(ctx, c.ID, first, last); err != nil {
		return nil, err
	}
	if first != "" {
		c.FirstName = first
	}
	if last != "" {
		c.LastName = last
	}
	return c, nil
}

// NextQuestion returns the pending question or reports completion.
func (s *InterviewService) NextQuestion(ctx context.Context, interviewID string) (*ports.NextQuestionResult, error) {
	interview, q, err := s.deps.Sessions.CurrentQuestion(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	res := &ports.NextQuestionResult{
		TotalQuestions:         interview.QuestionCount,
		QuestionTimeoutSeconds: s.deps.Config.Current().QuestionTimeoutSeconds,
	}
	if interview.IsCompleted() || q == nil {
		res.Completed = true
		return res, nil
	}
	res.Question = q
	res.QuestionNumber = q.Order
	return res, nil
}

// SubmitAnswer transcribes and scores audio for the pending question, then
// records it. Session checks run before the payload is looked at. Nothing is
// stored unless both upstream calls succeed.
func (s *InterviewService) SubmitAnswer(ctx context.Context, interviewID string, audio ports.Audio) (*ports.SubmitAnswerResult, error) {
	interview, question, err := s.deps.Sessions.CurrentQuestion(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.IsCompleted() {
		return nil, domain.ErrInterviewCompleted
	}
	if question == nil {
		return nil, fmt.Errorf("%w: interview %s in progress at index %d of %d",
			domain.ErrInvariant, interviewID, interview.CurrentIndex, interview.QuestionCount)
	}
	if len(audio.Data) == 0 {
		return nil, fmt.Errorf("%w: audio file is required", domain.ErrValidation)
	}

	transcript, eval, err := s.transcribeAndEvaluate(ctx, question, audio)
	if err != nil {
		return nil, err
	}

	res, err := s.deps.Sessions.Advance(ctx, question, transcript, eval)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("interview_id", interviewID).
		Int("question_order", question.Order).
		Int("score", eval.Score).
		Bool("completed", res.Interview.IsCompleted()).
		Msg("answer recorded")

	out := &ports.SubmitAnswerResult{
		Transcript:        transcript,
		Score:             eval.Score,
		Reasoning:         eval.Reasoning,
		Completed:         res.Interview.IsCompleted(),
		QuestionsAnswered: res.Interview.CurrentIndex,
		TotalQuestions:    res.Interview.QuestionCount,
	}
	if !out.Completed {
		next, err := s.deps.Sessions.Question(ctx, interviewID, res.Interview.CurrentIndex+1)
		if err != nil {
			return nil, err
		}
		out.NextQuestion = next
	}
	return out, nil
}

// transcribeAndEvaluate runs both upstream calls under the configured
// per-question deadline.
func (s *InterviewService) transcribeAndEvaluate(ctx context.Context, q *domain.Question, audio ports.Audio) (string, parser.Evaluation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.deps.Config.Current().QuestionTimeout())
	defer cancel()

	transcript, err := s.deps.Transcriber.Transcribe(ctx, audio)
	if err != nil {
		return "", parser.Evaluation{}, fmt.Errorf("%w: transcribe answer: %v", domain.ErrUpstream, err)
	}
	transcript = strings.TrimSpace(transcript)

	eval, err := s.deps.Evaluator.Evaluate(ctx, q.Content, transcript)
	if err != nil {
		return "", parser.Evaluation{}, err
	}
	return transcript, eval, nil
}

// Results returns the aggregate view of an interview.
func (s *InterviewService) Results(ctx context.Context, interviewID string) (*ports.InterviewResults, error) {
	return s.deps.Sessions.Results(ctx, interviewID)
}

// QuestionAudio returns synthesized speech for the pending question. Audio is
// cached by a hash of the question text; cache failures only cost a
// regeneration.
func (s *InterviewService) QuestionAudio(ctx context.Context, interviewID string) ([]byte, error) {
	interview, q, err := s.deps.Sessions.CurrentQuestion(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.IsCompleted() || q == nil {
		return nil, domain.ErrInterviewCompleted
	}

	key := AudioCacheKey(q.Content)
	data, found, err := s.deps.AudioCache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("audio cache read failed")
	}
	if found {
		return data, nil
	}

	data, err = s.deps.Speech.Synthesize(ctx, q.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: synthesize question: %v", domain.ErrUpstream, err)
	}
	if err := s.deps.AudioCache.Set(ctx, key, data); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("audio cache write failed")
	}
	return data, nil
}

// AudioCacheKey is the hex SHA-256 of the question text.
func AudioCacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hireflow/interviewer/internal/api/metrics"
	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/ports"
)

// maxAudioBytes bounds a single recorded answer (Whisper's upload limit).
const maxAudioBytes = 25 << 20

// InterviewHandler serves the candidate-facing /ai routes.
type InterviewHandler struct {
	service ports.InterviewService
}

func NewInterviewHandler(service ports.InterviewService) *InterviewHandler {
	return &InterviewHandler{service: service}
}

// Start handles POST /ai/start-interview.
//
// @Summary      Start an interview
// @Description  Creates (or reuses) the candidate, generates the question set and returns the first question.
// @Tags         interview
// @Accept       json
// @Produce      json
// @Param        body  body      startInterviewRequest  true  "Candidate and role"
// @Success      200   {object}  startInterviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /ai/start-interview [post]
func (h *InterviewHandler) Start(c echo.Context) error {
	var req startInterviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.Start(c.Request().Context(), ports.StartInterviewInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}
	metrics.InterviewsStartedTotal.Inc()

	return c.JSON(http.StatusOK, startInterviewResponse{
		InterviewID:            res.InterviewID,
		CandidateID:            res.CandidateID,
		Role:                   res.Role,
		TotalQuestions:         res.TotalQuestions,
		FirstQuestion:          toQuestionResponse(res.FirstQuestion),
		QuestionTimeoutSeconds: res.QuestionTimeoutSeconds,
	})
}

// NextQuestion handles GET /ai/next-question/:id.
//
// @Summary      Get the current question
// @Tags         interview
// @Produce      json
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  nextQuestionResponse
// @Failure      404  {object}  errorResponse
// @Router       /ai/next-question/{id} [get]
func (h *InterviewHandler) NextQuestion(c echo.Context) error {
	res, err := h.service.NextQuestion(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	resp := nextQuestionResponse{
		Completed:              res.Completed,
		Question:               toQuestionResponsePtr(res.Question),
		QuestionNumber:         res.QuestionNumber,
		TotalQuestions:         res.TotalQuestions,
		QuestionTimeoutSeconds: res.QuestionTimeoutSeconds,
	}
	if res.Completed {
		resp.Message = "interview completed"
	}
	return c.JSON(http.StatusOK, resp)
}

// SubmitAnswer handles POST /ai/submit-answer/:id.
//
// @Summary      Submit a recorded answer
// @Description  Transcribes the audio, scores it against the current question and advances the interview.
// @Tags         interview
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "Interview ID"
// @Param        audio  formData  file    true  "Recorded answer"
// @Success      200    {object}  submitAnswerResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /ai/submit-answer/{id} [post]
func (h *InterviewHandler) SubmitAnswer(c echo.Context) error {
	audio, err := readAudio(c)
	if err != nil {
		metrics.SubmitRejectionsTotal.WithLabelValues("validation").Inc()
		return err
	}

	res, err := h.service.SubmitAnswer(c.Request().Context(), c.Param("id"), audio)
	if err != nil {
		metrics.SubmitRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
		return err
	}

	metrics.AnswersRecordedTotal.Inc()
	metrics.AnswerScore.Observe(float64(res.Score))
	if res.Completed {
		metrics.InterviewsCompletedTotal.Inc()
	}

	return c.JSON(http.StatusOK, submitAnswerResponse{
		Transcription:     res.Transcript,
		Score:             res.Score,
		Reasoning:         res.Reasoning,
		NextQuestion:      toQuestionResponsePtr(res.NextQuestion),
		Completed:         res.Completed,
		QuestionsAnswered: res.QuestionsAnswered,
		TotalQuestions:    res.TotalQuestions,
	})
}

// Results handles GET /ai/interview-results/:id.
//
// @Summary      Get interview results
// @Tags         interview
// @Produce      json
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  resultsResponse
// @Failure      404  {object}  errorResponse
// @Router       /ai/interview-results/{id} [get]
func (h *InterviewHandler) Results(c echo.Context) error {
	res, err := h.service.Results(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResultsResponse(res))
}

// QuestionAudio handles GET /ai/question-audio/:id.
//
// @Summary      Speak the current question
// @Tags         interview
// @Produce      audio/mpeg
// @Param        id   path  string  true  "Interview ID"
// @Success      200  {file}    binary
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /ai/question-audio/{id} [get]
func (h *InterviewHandler) QuestionAudio(c echo.Context) error {
	data, err := h.service.QuestionAudio(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=3600")
	return c.Blob(http.StatusOK, "audio/mpeg", data)
}

func readAudio(c echo.Context) (ports.Audio, error) {
	fh, err := c.FormFile("audio")
	if errors.Is(err, http.ErrMissingFile) {
		// The service rejects empty audio once the session checks pass.
		return ports.Audio{}, nil
	}
	if err != nil {
		return ports.Audio{}, echo.NewHTTPError(http.StatusBadRequest, "audio file is required")
	}
	if fh.Size > maxAudioBytes {
		return ports.Audio{}, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "audio file too large")
	}
	f, err := fh.Open()
	if err != nil {
		return ports.Audio{}, fmt.Errorf("opening audio upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxAudioBytes))
	if err != nil {
		return ports.Audio{}, fmt.Errorf("reading audio upload: %w", err)
	}
	return ports.Audio{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInterviewCompleted):
		return "completed"
	case errors.Is(err, domain.ErrStaleQuestion):
		return "stale"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrInterviewNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrUpstream):
		return "upstream"
	default:
		return "internal"
	}
}

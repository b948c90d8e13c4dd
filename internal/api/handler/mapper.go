package handler

import (
	"time"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/ports"
)

// --- Service result → HTTP response ---

func toQuestionResponse(q domain.Question) questionResponse {
	return questionResponse{ID: q.ID, Content: q.Content, QuestionOrder: q.Order}
}

func toQuestionResponsePtr(q *domain.Question) *questionResponse {
	if q == nil {
		return nil
	}
	r := toQuestionResponse(*q)
	return &r
}

func toCandidateResponse(c *domain.Candidate) *candidateResponse {
	if c == nil {
		return nil
	}
	return &candidateResponse{ID: c.ID, Email: c.Email, FirstName: c.FirstName, LastName: c.LastName}
}

func toResultsResponse(r *ports.InterviewResults) resultsResponse {
	st := r.Statistics.Rounded()
	resp := resultsResponse{
		InterviewID:       r.Interview.ID,
		Role:              r.Interview.Role,
		Status:            string(r.Interview.Status),
		QuestionsAnswered: st.AnswersSubmitted,
		TotalQuestions:    st.TotalQuestions,
		StartTime:         r.Interview.StartTime.UTC(),
		EndTime:           utcPtr(r.Interview.EndTime),
		FinalScore:        r.Interview.FinalScore,
		Candidate:         toCandidateResponse(r.Candidate),
		Statistics: statisticsResponse{
			TotalQuestions:       st.TotalQuestions,
			AnswersSubmitted:     st.AnswersSubmitted,
			TotalScore:           st.TotalScore,
			MaxPossibleScore:     st.MaxPossibleScore,
			AverageScore:         st.AverageScore,
			CompletionPercentage: st.CompletionPercentage,
		},
		Questions: make([]questionResponse, 0, len(r.Questions)),
		Answers:   make([]answerResponse, 0, len(r.Answers)),
	}
	for _, q := range r.Questions {
		resp.Questions = append(resp.Questions, toQuestionResponse(q))
	}
	for _, a := range r.Answers {
		resp.Answers = append(resp.Answers, answerResponse{
			QuestionOrder: a.QuestionOrder,
			Question:      a.Question,
			Transcript:    a.Transcript,
			Score:         a.Score,
			Feedback:      a.Feedback,
			CreatedAt:     a.CreatedAt.UTC(),
		})
	}
	return resp
}

func toListResponse(r *ports.ListInterviewsResult) listInterviewsResponse {
	resp := listInterviewsResponse{
		Interviews: make([]interviewSummaryResponse, 0, len(r.Items)),
		Pagination: paginationResponse{Page: r.Page, Limit: r.Limit, Total: r.Total, Pages: r.TotalPages},
	}
	for _, s := range r.Items {
		resp.Interviews = append(resp.Interviews, interviewSummaryResponse{
			ID:                s.ID,
			Role:              s.Role,
			Status:            string(s.Status),
			QuestionsAnswered: s.CurrentIndex,
			TotalQuestions:    s.QuestionCount,
			TotalScore:        s.TotalScore,
			FinalScore:        s.FinalScore,
			StartTime:         s.StartTime.UTC(),
			EndTime:           utcPtr(s.EndTime),
			CreatedAt:         s.CreatedAt.UTC(),
			Candidate:         toCandidateResponse(s.Candidate),
		})
	}
	return resp
}

func toConfigResponse(c domain.RuntimeConfig) configResponse {
	return configResponse{MaxQuestions: c.MaxQuestions, QuestionTimeoutSeconds: c.QuestionTimeoutSeconds}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

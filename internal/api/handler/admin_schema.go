package handler

import "time"

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type adminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type loginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	Admin       adminResponse `json:"admin"`
}

type listInterviewsQuery struct {
	Role  string `query:"role"  validate:"max=200"`
	Email string `query:"email" validate:"max=200"`
	Page  int    `query:"page"  validate:"omitempty,min=1"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

type interviewSummaryResponse struct {
	ID                string             `json:"id"`
	Role              string             `json:"role"`
	Status            string             `json:"status"`
	QuestionsAnswered int                `json:"questions_answered"`
	TotalQuestions    int                `json:"total_questions"`
	TotalScore        int                `json:"total_score"`
	FinalScore        *int               `json:"final_score,omitempty"`
	StartTime         time.Time          `json:"start_time"`
	EndTime           *time.Time         `json:"end_time,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	Candidate         *candidateResponse `json:"candidate"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type listInterviewsResponse struct {
	Interviews []interviewSummaryResponse `json:"interviews"`
	Pagination paginationResponse         `json:"pagination"`
}

type configResponse struct {
	MaxQuestions           int `json:"max_questions"`
	QuestionTimeoutSeconds int `json:"question_timeout_seconds"`
}

// updateConfigRequest fields are optional; absent keys keep their value.
type updateConfigRequest struct {
	MaxQuestions           *int `json:"max_questions"`
	QuestionTimeoutSeconds *int `json:"question_timeout_seconds"`
}

type rootResponse struct {
	Message                string `json:"message"`
	MaxQuestions           int    `json:"max_questions"`
	QuestionTimeoutSeconds int    `json:"question_timeout_seconds"`
}

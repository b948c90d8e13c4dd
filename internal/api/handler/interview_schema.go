package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type startInterviewRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name"  validate:"max=100"`
	Role      string `json:"role"       validate:"required,max=200"`
}

type questionResponse struct {
	ID            string `json:"id"`
	Content       string `json:"content"`
	QuestionOrder int    `json:"question_order"`
}

type startInterviewResponse struct {
	InterviewID            string           `json:"interview_id"`
	CandidateID            string           `json:"candidate_id"`
	Role                   string           `json:"role"`
	TotalQuestions         int              `json:"total_questions"`
	FirstQuestion          questionResponse `json:"first_question"`
	QuestionTimeoutSeconds int              `json:"question_timeout_seconds"`
}

type nextQuestionResponse struct {
	Completed              bool              `json:"completed"`
	Message                string            `json:"message,omitempty"`
	Question               *questionResponse `json:"question,omitempty"`
	QuestionNumber         int               `json:"question_number,omitempty"`
	TotalQuestions         int               `json:"total_questions"`
	QuestionTimeoutSeconds int               `json:"question_timeout_seconds"`
}

type submitAnswerResponse struct {
	Transcription     string            `json:"transcription"`
	Score             int               `json:"score"`
	Reasoning         string            `json:"reasoning"`
	NextQuestion      *questionResponse `json:"next_question"`
	Completed         bool              `json:"completed"`
	QuestionsAnswered int               `json:"questions_answered"`
	TotalQuestions    int               `json:"total_questions"`
}

type candidateResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type statisticsResponse struct {
	TotalQuestions       int     `json:"total_questions"`
	AnswersSubmitted     int     `json:"answers_submitted"`
	TotalScore           float64 `json:"total_score"`
	MaxPossibleScore     int     `json:"max_possible_score"`
	AverageScore         float64 `json:"average_score"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type answerResponse struct {
	QuestionOrder int       `json:"question_order"`
	Question      string    `json:"question"`
	Transcript    string    `json:"transcript"`
	Score         int       `json:"score"`
	Feedback      string    `json:"feedback"`
	CreatedAt     time.Time `json:"created_at"`
}

type resultsResponse struct {
	InterviewID       string             `json:"interview_id"`
	Role              string             `json:"role"`
	Status            string             `json:"status"`
	QuestionsAnswered int                `json:"questions_answered"`
	TotalQuestions    int                `json:"total_questions"`
	StartTime         time.Time          `json:"start_time"`
	EndTime           *time.Time         `json:"end_time,omitempty"`
	FinalScore        *int               `json:"final_score,omitempty"`
	Candidate         *candidateResponse `json:"candidate"`
	Statistics        statisticsResponse `json:"statistics"`
	Questions         []questionResponse `json:"questions"`
	Answers           []answerResponse   `json:"answers"`
}

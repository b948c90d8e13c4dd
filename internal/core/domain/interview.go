package domain

import "time"

// InterviewStatus represents the lifecycle state of an interview session.
type InterviewStatus string

const (
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
)

// MaxRubricScore is the best score a single answer can receive.
const MaxRubricScore = 5

// Candidate is the person being interviewed, identified by email.
type Candidate struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	FirstName string    `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty" bson:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Interview is the aggregate root of one candidate's attempt at a role.
//
// CurrentIndex is the zero-based position of the next unanswered question;
// it equals QuestionCount exactly when Status is StatusCompleted.
type Interview struct {
	ID            string          `json:"id" bson:"_id"`
	CandidateID   string          `json:"candidate_id" bson:"candidate_id"`
	Role          string          `json:"role" bson:"role"`
	QuestionCount int             `json:"question_count" bson:"question_count"`
	CurrentIndex  int             `json:"current_index" bson:"current_index"`
	Status        InterviewStatus `json:"status" bson:"status"`
	TotalScore    int             `json:"total_score" bson:"total_score"`
	FinalScore    *int            `json:"final_score,omitempty" bson:"final_score,omitempty"`
	StartTime     time.Time       `json:"start_time" bson:"start_time"`
	EndTime       *time.Time      `json:"end_time,omitempty" bson:"end_time,omitempty"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
}

// IsCompleted reports whether the interview reached its terminal state.
func (i *Interview) IsCompleted() bool {
	return i.Status == StatusCompleted
}

// HasPendingQuestion reports whether a question remains to be answered.
func (i *Interview) HasPendingQuestion() bool {
	return i.CurrentIndex < i.QuestionCount
}

// CanAdvanceFrom reports whether an answer may be recorded for the question at
// index. It is false once the interview is completed or index is stale.
func (i *Interview) CanAdvanceFrom(index int) bool {
	return !i.IsCompleted() && i.CurrentIndex == index && index < i.QuestionCount
}

// Question is one prompt of an interview. Order is 1-based and contiguous.
type Question struct {
	ID          string `json:"id" bson:"_id"`
	InterviewID string `json:"interview_id" bson:"interview_id"`
	Role        string `json:"role" bson:"role"`
	Content     string `json:"content" bson:"content"`
	Order       int    `json:"question_order" bson:"question_order"`
}

// Answer is the evaluated response to a single question.
type Answer struct {
	ID            string    `json:"id" bson:"_id"`
	InterviewID   string    `json:"interview_id" bson:"interview_id"`
	QuestionID    string    `json:"question_id" bson:"question_id"`
	QuestionOrder int       `json:"question_order" bson:"question_order"`
	Transcript    string    `json:"transcript" bson:"transcript"`
	Score         int       `json:"score" bson:"score"`
	Feedback      string    `json:"feedback" bson:"feedback"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

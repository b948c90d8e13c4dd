package domain

import "errors"

var (
	ErrInterviewNotFound  = errors.New("interview not found")
	ErrInterviewCompleted = errors.New("interview already completed")
	ErrStaleQuestion      = errors.New("question already answered")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrCandidateExists    = errors.New("candidate already exists")

	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminExists        = errors.New("admin already exists")

	ErrValidation     = errors.New("validation failed")
	ErrConfigNotFound = errors.New("config not stored")

	// ErrUpstream wraps failures of transcription, generation and speech
	// synthesis collaborators.
	ErrUpstream = errors.New("upstream service failure")

	// ErrInvariant marks a broken internal invariant. It is a defect, never a
	// client mistake.
	ErrInvariant = errors.New("internal invariant violated")
)

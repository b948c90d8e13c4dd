package ports

import (
	"context"

	"github.com/hireflow/interviewer/internal/core/domain"
)

// CandidateRepository defines persistence for candidates.
type CandidateRepository interface {
	// FindByEmail returns domain.ErrCandidateNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.Candidate, error)
	FindByID(ctx context.Context, id string) (*domain.Candidate, error)
	// FindByIDs returns the candidates found, keyed by id. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Candidate, error)
	// SearchByEmail returns ids of candidates whose email contains fragment,
	// ignoring case.
	SearchByEmail(ctx context.Context, fragment string) ([]string, error)
	// Create returns domain.ErrCandidateExists when the email is taken.
	Create(ctx context.Context, c *domain.Candidate) error
	// UpdateNames overwrites only the non-empty name fields.
	UpdateNames(ctx context.Context, id, firstName, lastName string) error
}

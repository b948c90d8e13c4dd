package ports

import (
	"context"

	"github.com/hireflow/interviewer/internal/core/domain"
)

// AuthService issues and verifies admin bearer tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Admin, error)
	// Verify reports ok=false for any invalid, expired or malformed token.
	Verify(token string) (*domain.AdminClaims, bool)
	CreateAdmin(ctx context.Context, email, password string) (*domain.Admin, error)
	ResetPassword(ctx context.Context, email, password string) error
}

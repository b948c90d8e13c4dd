package ports

import (
	"context"

	"github.com/hireflow/interviewer/internal/core/domain"
)

// AdminRepository defines persistence for admin credentials.
type AdminRepository interface {
	// FindByEmail returns domain.ErrAdminNotFound when no admin has email.
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	// Create returns domain.ErrAdminExists when the email is taken.
	Create(ctx context.Context, admin *domain.Admin) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

package ports

import (
	"context"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Insert creates the account; a duplicate email yields domain.ErrUserExists.
	Insert(ctx context.Context, u *domain.User) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
}

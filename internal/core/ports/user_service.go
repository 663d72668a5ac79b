package ports

import (
	"context"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
)

// RegisterUserInput carries the fields accepted on registration.
// Password is optional; when present it is stored as a bcrypt hash and
// never serialised back to clients.
type RegisterUserInput struct {
	Email    string
	Name     string
	PhotoURL string
	Role     string
	Password string
}

// UserService defines use-case operations for accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

package ports

import (
	"context"

	"github.com/dogmap/dogmap-api/internal/core/domain"
)

// PetInput holds the pet sub-record of a registration request.
type PetInput struct {
	Name  string
	Type  string
	Breed string
}

// RegisterUserInput carries all data needed to register a user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Pet      PetInput
}

// UserService defines use-case operations for users.
type UserService interface {
	ListUsers(ctx context.Context) []domain.User
	// GetUser looks up a user by its raw path identifier. Malformed
	// identifiers are answered with ErrUserNotFound.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
}

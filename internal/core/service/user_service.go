package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dogmap/dogmap-api/internal/api/metrics"
	"github.com/dogmap/dogmap-api/internal/core/domain"
	"github.com/dogmap/dogmap-api/internal/core/ports"
)

// UserService implements user listing, lookup and registration.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) ListUsers(_ context.Context) []domain.User {
	return s.repo.Users()
}

func (s *UserService) GetUser(_ context.Context, id string) (*domain.User, error) {
	userID, ok := parseID(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindUserByID(userID)
}

func (s *UserService) Register(_ context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	user, err := s.repo.CreateUser(input.Name, input.Email, input.Password, domain.Pet{
		Name:  input.Pet.Name,
		Type:  input.Pet.Type,
		Breed: input.Pet.Breed,
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info().Int("user_id", user.ID).Msg("user registered")
	return user, nil
}

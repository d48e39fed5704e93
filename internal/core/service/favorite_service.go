package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dogmap/dogmap-api/internal/api/metrics"
	"github.com/dogmap/dogmap-api/internal/core/domain"
	"github.com/dogmap/dogmap-api/internal/core/ports"
)

// FavoriteService implements the favorite list/add/remove use cases.
// Callers are expected to have passed the ownership gate already; the
// service only enforces the store invariants.
type FavoriteService struct {
	repo   ports.FavoriteRepository
	logger zerolog.Logger
}

func NewFavoriteService(repo ports.FavoriteRepository, logger zerolog.Logger) *FavoriteService {
	return &FavoriteService{repo: repo, logger: logger}
}

func (s *FavoriteService) ListFavorites(_ context.Context, userID string) ([]domain.FavoriteWithPlace, error) {
	id, ok := parseID(userID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FavoritesForUser(id)
}

func (s *FavoriteService) AddFavorite(_ context.Context, userID, placeID string) (*domain.Favorite, error) {
	uid, ok := parseID(userID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	pid, ok := parseID(placeID)
	if !ok {
		return nil, domain.ErrPlaceNotFound
	}

	favorite, err := s.repo.AddFavorite(uid, pid)
	if err != nil {
		return nil, err
	}

	metrics.FavoritesTotal.WithLabelValues("added").Inc()
	s.logger.Info().Int("user_id", uid).Int("place_id", pid).Msg("favorite added")
	return favorite, nil
}

func (s *FavoriteService) RemoveFavorite(_ context.Context, userID, placeID string) error {
	uid, ok := parseID(userID)
	if !ok {
		return domain.ErrUserNotFound
	}
	pid, ok := parseID(placeID)
	if !ok {
		return domain.ErrPlaceNotFound
	}

	if err := s.repo.RemoveFavorite(uid, pid); err != nil {
		return err
	}

	metrics.FavoritesTotal.WithLabelValues("removed").Inc()
	s.logger.Info().Int("user_id", uid).Int("place_id", pid).Msg("favorite removed")
	return nil
}

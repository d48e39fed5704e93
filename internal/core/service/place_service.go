package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dogmap/dogmap-api/internal/api/metrics"
	"github.com/dogmap/dogmap-api/internal/core/domain"
	"github.com/dogmap/dogmap-api/internal/core/ports"
)

// PlaceService implements place listing, lookup and registration.
type PlaceService struct {
	repo   ports.PlaceRepository
	logger zerolog.Logger
}

func NewPlaceService(repo ports.PlaceRepository, logger zerolog.Logger) *PlaceService {
	return &PlaceService{repo: repo, logger: logger}
}

func (s *PlaceService) ListPlaces(_ context.Context, input ports.ListPlacesInput) []domain.Place {
	return s.repo.Places(input.Type, input.Limit)
}

func (s *PlaceService) GetPlace(_ context.Context, id string) (*domain.Place, error) {
	placeID, ok := parseID(id)
	if !ok {
		return nil, domain.ErrPlaceNotFound
	}
	return s.repo.FindPlaceByID(placeID)
}

func (s *PlaceService) CreatePlace(_ context.Context, name, placeType string) (*domain.Place, error) {
	place, err := s.repo.CreatePlace(name, placeType)
	if err != nil {
		return nil, err
	}

	metrics.PlacesCreatedTotal.WithLabelValues(place.Type).Inc()
	s.logger.Info().Int("place_id", place.ID).Str("type", place.Type).Msg("place created")
	return place, nil
}

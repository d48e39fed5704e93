package ports

import (
	"context"

	"github.com/dogmap/dogmap-api/internal/core/domain"
)

// ListPlacesInput carries the query parameters for listing places.
// Limit is -1 when the caller did not supply one.
type ListPlacesInput struct {
	Type  string
	Limit int
}

// PlaceService defines use-case operations for places.
type PlaceService interface {
	ListPlaces(ctx context.Context, input ListPlacesInput) []domain.Place
	GetPlace(ctx context.Context, id string) (*domain.Place, error)
	CreatePlace(ctx context.Context, name, placeType string) (*domain.Place, error)
}

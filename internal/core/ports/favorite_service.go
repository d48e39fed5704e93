package ports

import (
	"context"

	"github.com/dogmap/dogmap-api/internal/core/domain"
)

// FavoriteService defines use-case operations for favorites. Identifiers
// are the raw path parameters; malformed ones are answered with the
// entity's not-found error.
type FavoriteService interface {
	ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteWithPlace, error)
	AddFavorite(ctx context.Context, userID, placeID string) (*domain.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, placeID string) error
}

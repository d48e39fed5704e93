package ports

import (
	"context"

	"github.com/dogmap/dogmap-api/internal/core/domain"
)

// CreateReviewInput carries all data needed to review a place. UserID is
// the authenticated caller; PlaceID is the raw path identifier.
type CreateReviewInput struct {
	UserID  int
	PlaceID string
	Rating  int
	Comment string
}

// ReviewService defines use-case operations for reviews.
type ReviewService interface {
	ListPlaceReviews(ctx context.Context, placeID string) ([]domain.Review, error)
	CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
}

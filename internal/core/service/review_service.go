package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dogmap/dogmap-api/internal/api/metrics"
	"github.com/dogmap/dogmap-api/internal/core/domain"
	"github.com/dogmap/dogmap-api/internal/core/ports"
)

// ReviewService implements review listing and creation.
type ReviewService struct {
	repo   ports.ReviewRepository
	logger zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger}
}

func (s *ReviewService) ListPlaceReviews(_ context.Context, placeID string) ([]domain.Review, error) {
	id, ok := parseID(placeID)
	if !ok {
		return nil, domain.ErrPlaceNotFound
	}
	return s.repo.ReviewsForPlace(id)
}

func (s *ReviewService) CreateReview(_ context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	placeID, ok := parseID(input.PlaceID)
	if !ok {
		return nil, domain.ErrPlaceNotFound
	}

	review, err := s.repo.CreateReview(input.UserID, placeID, input.Rating, input.Comment)
	if err != nil {
		return nil, err
	}

	metrics.ReviewsCreatedTotal.Inc()
	s.logger.Info().
		Int("review_id", review.ID).
		Int("user_id", review.UserID).
		Int("place_id", review.PlaceID).
		Msg("review created")
	return review, nil
}

package ports

import "github.com/dogmap/dogmap-api/internal/core/domain"

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Users() []domain.User
	FindUserByID(id int) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	// CreateUser assigns the next user id atomically. Fails with
	// ErrInvalidPassword when the password is not exactly 6 digits and
	// ErrEmailTaken when the email is already registered (exact match).
	CreateUser(name, email, password string, pet domain.Pet) (*domain.User, error)
}

// PlaceRepository defines persistence operations for places.
type PlaceRepository interface {
	// Places filters by case-insensitive substring match on the type
	// label and truncates to the first limit entries. A negative limit
	// means no truncation.
	Places(typeFilter string, limit int) []domain.Place
	FindPlaceByID(id int) (*domain.Place, error)
	CreatePlace(name, placeType string) (*domain.Place, error)
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	ReviewsForPlace(placeID int) ([]domain.Review, error)
	FindReviewByID(id int) (*domain.Review, error)
	// CreateReview checks referential integrity before uniqueness:
	// ErrPlaceNotFound, then field validation, then ErrDuplicateReview.
	CreateReview(userID, placeID, rating int, comment string) (*domain.Review, error)
}

// FavoriteRepository defines persistence operations for favorites.
type FavoriteRepository interface {
	FavoritesForUser(userID int) ([]domain.FavoriteWithPlace, error)
	AddFavorite(userID, placeID int) (*domain.Favorite, error)
	RemoveFavorite(userID, placeID int) error
}

// Store groups the four entity repositories. The in-memory
// implementation backs all of them with a single shared lock.
type Store interface {
	UserRepository
	PlaceRepository
	ReviewRepository
	FavoriteRepository
}

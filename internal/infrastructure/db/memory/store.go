// Package memory implements the entity store as process-owned in-memory
// collections. The store is constructed once at startup and injected into
// services; a single store-wide lock serializes mutations, which is enough
// for the contention this API sees.
package memory

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/dogmap/dogmap-api/internal/core/domain"
)

var passwordRe = regexp.MustCompile(`^[0-9]{6}$`)

// Store holds users, places, reviews and favorites, generates monotonic
// identifiers and enforces the relational invariants.
type Store struct {
	mu        sync.RWMutex
	users     []domain.User
	places    []domain.Place
	reviews   []domain.Review
	favorites []domain.Favorite

	nextUserID   int
	nextPlaceID  int
	nextReviewID int

	now func() time.Time
}

// NewStore returns an empty store. Call Seed to load the demo fixtures.
func NewStore() *Store {
	return &Store{
		nextUserID:   1,
		nextPlaceID:  1,
		nextReviewID: 1,
		now:          time.Now,
	}
}

// Stats reports the current collection sizes.
type Stats struct {
	Users     int
	Places    int
	Reviews   int
	Favorites int
}

// Stats returns the number of entities per collection.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Users:     len(s.users),
		Places:    len(s.places),
		Reviews:   len(s.reviews),
		Favorites: len(s.favorites),
	}
}

// --- Users ---

// Users returns a snapshot of all users in insertion order.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// FindUserByID returns the user with the given id.
func (s *Store) FindUserByID(id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(id)
}

func (s *Store) findUser(id int) (*domain.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindUserByEmail returns the user with the given email. Matching is
// case-sensitive and exact.
func (s *Store) FindUserByEmail(email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// CreateUser registers a new user. The duplicate-email check and the id
// assignment happen under the same lock, so concurrent registrations can
// neither share an id nor an email.
func (s *Store) CreateUser(name, email, password string, pet domain.Pet) (*domain.User, error) {
	if !passwordRe.MatchString(password) {
		return nil, domain.ErrInvalidPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return nil, domain.ErrEmailTaken
		}
	}

	user := domain.User{
		ID:       s.nextUserID,
		Name:     name,
		Email:    email,
		Password: password,
		Pet:      pet,
	}
	s.nextUserID++
	s.users = append(s.users, user)
	return &user, nil
}

// --- Places ---

// Places returns places whose type label contains typeFilter
// (case-insensitive), truncated to the first limit entries. An empty
// filter matches everything; a negative limit disables truncation.
func (s *Store) Places(typeFilter string, limit int) []domain.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Place, 0, len(s.places))
	needle := strings.ToLower(typeFilter)
	for _, p := range s.places {
		if typeFilter != "" && !strings.Contains(strings.ToLower(p.Type), needle) {
			continue
		}
		out = append(out, p)
	}
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// FindPlaceByID returns the place with the given id.
func (s *Store) FindPlaceByID(id int) (*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findPlace(id)
}

func (s *Store) findPlace(id int) (*domain.Place, error) {
	for i := range s.places {
		if s.places[i].ID == id {
			p := s.places[i]
			return &p, nil
		}
	}
	return nil, domain.ErrPlaceNotFound
}

// CreatePlace registers a new place.
func (s *Store) CreatePlace(name, placeType string) (*domain.Place, error) {
	if !domain.ValidPlaceType(placeType) {
		return nil, domain.ErrInvalidPlaceType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	place := domain.Place{
		ID:   s.nextPlaceID,
		Name: name,
		Type: placeType,
	}
	s.nextPlaceID++
	s.places = append(s.places, place)
	return &place, nil
}

// --- Reviews ---

// ReviewsForPlace returns the reviews of a place in insertion order.
func (s *Store) ReviewsForPlace(placeID int) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.findPlace(placeID); err != nil {
		return nil, err
	}

	out := make([]domain.Review, 0)
	for _, r := range s.reviews {
		if r.PlaceID == placeID {
			out = append(out, r)
		}
	}
	return out, nil
}

// FindReviewByID returns the review with the given id.
func (s *Store) FindReviewByID(id int) (*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			r := s.reviews[i]
			return &r, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

// CreateReview adds a review. Check order is part of the contract: place
// existence, then field validation, then the one-review-per-pair rule.
func (s *Store) CreateReview(userID, placeID, rating int, comment string) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findPlace(placeID); err != nil {
		return nil, err
	}
	if rating == 0 || comment == "" {
		return nil, domain.ErrMissingReviewFields
	}
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	for _, r := range s.reviews {
		if r.UserID == userID && r.PlaceID == placeID {
			return nil, domain.ErrDuplicateReview
		}
	}

	review := domain.Review{
		ID:        s.nextReviewID,
		UserID:    userID,
		PlaceID:   placeID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: s.now(),
	}
	s.nextReviewID++
	s.reviews = append(s.reviews, review)
	return &review, nil
}

// --- Favorites ---

// FavoritesForUser returns the user's favorites, each denormalized with
// its place.
func (s *Store) FavoritesForUser(userID int) ([]domain.FavoriteWithPlace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.findUser(userID); err != nil {
		return nil, err
	}

	out := make([]domain.FavoriteWithPlace, 0)
	for _, f := range s.favorites {
		if f.UserID != userID {
			continue
		}
		place, err := s.findPlace(f.PlaceID)
		if err != nil {
			continue
		}
		out = append(out, domain.FavoriteWithPlace{
			UserID:  f.UserID,
			PlaceID: f.PlaceID,
			Place:   *place,
		})
	}
	return out, nil
}

// AddFavorite bookmarks a place for a user. Referential checks run before
// the duplicate check; adding an existing pair is an error, not a no-op.
func (s *Store) AddFavorite(userID, placeID int) (*domain.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findUser(userID); err != nil {
		return nil, err
	}
	if _, err := s.findPlace(placeID); err != nil {
		return nil, err
	}
	for _, f := range s.favorites {
		if f.UserID == userID && f.PlaceID == placeID {
			return nil, domain.ErrDuplicateFavorite
		}
	}

	favorite := domain.Favorite{UserID: userID, PlaceID: placeID}
	s.favorites = append(s.favorites, favorite)
	return &favorite, nil
}

// RemoveFavorite deletes the (user, place) pair. Removing a pair that was
// never added fails with ErrFavoriteNotFound.
func (s *Store) RemoveFavorite(userID, placeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findUser(userID); err != nil {
		return err
	}
	if _, err := s.findPlace(placeID); err != nil {
		return err
	}
	for i, f := range s.favorites {
		if f.UserID == userID && f.PlaceID == placeID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return domain.ErrFavoriteNotFound
}

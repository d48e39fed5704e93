package domain

import "errors"

// Not-found errors. Referential checks surface these before any
// uniqueness check.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPlaceNotFound    = errors.New("place not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// Uniqueness violations.
var (
	ErrEmailTaken        = errors.New("email already registered")
	ErrDuplicateReview   = errors.New("user already reviewed this place")
	ErrDuplicateFavorite = errors.New("place already favorited")
)

// Validation errors.
var (
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidPassword     = errors.New("password must be exactly 6 digits")
	ErrInvalidPlaceType    = errors.New("invalid place type")
	ErrInvalidRating       = errors.New("rating must be an integer between 1 and 5")
	ErrMissingReviewFields = errors.New("rating and comment are required")
)

// Authentication and authorization errors.
var (
	ErrEmailNotRegistered = errors.New("email not registered")
	ErrWrongPassword      = errors.New("wrong password")
	ErrMalformedToken     = errors.New("malformed token")
	ErrUnknownTokenUser   = errors.New("token user not found")
)

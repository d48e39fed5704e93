package domain

// Favorite is a user's bookmark of a place, keyed by the
// (user, place) pair.
type Favorite struct {
	UserID  int `json:"userId"`
	PlaceID int `json:"placeId"`
}

// FavoriteWithPlace is the read-side view of a favorite, denormalized
// with its place at query time.
type FavoriteWithPlace struct {
	UserID  int   `json:"userId"`
	PlaceID int   `json:"placeId"`
	Place   Place `json:"place"`
}

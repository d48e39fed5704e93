package domain

import "time"

// Review is a user's rating of a place. At most one review exists per
// (user, place) pair; reviews are immutable after creation.
type Review struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	PlaceID   int       `json:"placeId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

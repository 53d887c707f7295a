package entity

import "time"

// UserPost is a photo post on a user's profile. Posts are append-only and
// never mutated or removed. ImageURL typically carries an inline-encoded
// image rather than a remote reference.
type UserPost struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ImageURL  string    `json:"imageUrl"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
}

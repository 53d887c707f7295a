package entity

import "time"

// Review is a user's rating of the platform. Each user holds at most one
// review at a time; a new one replaces the old.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

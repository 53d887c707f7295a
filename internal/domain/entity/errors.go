package entity

import "errors"

// Typed failures surfaced by the repositories. Callers match them with
// errors.Is; everything else is an infrastructure error.
var (
	// ErrEmailInUse is returned when registering an email already on the roster.
	ErrEmailInUse = errors.New("email already in use")
	// ErrUserNotFound is returned when an email or id matches no roster entry.
	ErrUserNotFound = errors.New("user not found")
	// ErrThreadNotFound is returned when a thread id matches no forum thread.
	ErrThreadNotFound = errors.New("thread not found")
	// ErrNotAuthenticated is returned by mutating operations that require an author.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidRating is returned when a review rating falls outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

package contract

// IValidator validates user-supplied values before they reach a collection.
type IValidator interface {
	// ValidateEmail checks if the email format is valid.
	ValidateEmail(email string) error
	// ValidateRating checks that a review rating lies within 1..5.
	ValidateRating(rating int) error
}

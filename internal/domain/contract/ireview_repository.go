package contract

import (
	"context"

	"github.com/desparches/backend/internal/domain/entity"
)

// IReviewRepository keeps at most one review per user: adding a review
// removes any previous review by the same user.
type IReviewRepository interface {
	// AddReview replaces the user's review with a new one. Fails with
	// entity.ErrInvalidRating when rating falls outside 1..5.
	AddReview(ctx context.Context, userID string, rating int, comment string) (*entity.Review, error)
	// GetUserReview returns the user's review, if any.
	GetUserReview(ctx context.Context, userID string) (*entity.Review, bool)
	// ListReviews returns every review in insertion order.
	ListReviews(ctx context.Context) []entity.Review
}

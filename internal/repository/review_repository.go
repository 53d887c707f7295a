package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
)

// ReviewRepository owns the "reviews" collection. Each user holds at most
// one review: adding a new one replaces the previous (last write wins).
type ReviewRepository struct {
	mu        sync.Mutex
	store     contract.IRecordStore
	log       contract.IAppLogger
	ids       contract.IIDGenerator
	clock     contract.IClock
	validator contract.IValidator
}

func NewReviewRepository(
	store contract.IRecordStore,
	log contract.IAppLogger,
	ids contract.IIDGenerator,
	clock contract.IClock,
	validator contract.IValidator,
) *ReviewRepository {
	return &ReviewRepository{store: store, log: log, ids: ids, clock: clock, validator: validator}
}

var _ contract.IReviewRepository = (*ReviewRepository)(nil)

func (r *ReviewRepository) all(ctx context.Context) []entity.Review {
	reviews, _ := recordstore.Read[[]entity.Review](ctx, r.store, r.log, reviewsKey)
	return reviews
}

// AddReview removes any existing review by userID and appends the new one.
func (r *ReviewRepository) AddReview(ctx context.Context, userID string, rating int, comment string) (*entity.Review, error) {
	if err := r.validator.ValidateRating(rating); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	reviews := r.all(ctx)
	kept := make([]entity.Review, 0, len(reviews)+1)
	for _, rv := range reviews {
		if rv.UserID != userID {
			kept = append(kept, rv)
		}
	}
	review := entity.Review{
		ID:        r.ids.NewID("rev"),
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: r.clock.Now(),
	}
	kept = append(kept, review)
	if err := recordstore.Write(ctx, r.store, reviewsKey, kept); err != nil {
		return nil, fmt.Errorf("persisting reviews: %w", err)
	}
	return &review, nil
}

// GetUserReview returns the user's review, if any.
func (r *ReviewRepository) GetUserReview(ctx context.Context, userID string) (*entity.Review, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.all(ctx) {
		if rv.UserID == userID {
			return &rv, true
		}
	}
	return nil, false
}

// ListReviews returns every review in insertion order.
func (r *ReviewRepository) ListReviews(ctx context.Context) []entity.Review {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.all(ctx)
}

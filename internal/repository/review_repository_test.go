package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/infrastructure/idgen"
	"github.com/desparches/backend/internal/infrastructure/logger"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
	"github.com/desparches/backend/internal/infrastructure/validator"
	"github.com/desparches/backend/internal/repository"
)

func newReviewRepo() *repository.ReviewRepository {
	return repository.NewReviewRepository(
		recordstore.NewMemoryStore(),
		logger.NewNopLogger(),
		idgen.NewGenerator(),
		newStepClock(),
		validator.NewValidator(),
	)
}

func TestAddReview(t *testing.T) {
	repo := newReviewRepo()
	ctx := context.Background()

	review, err := repo.AddReview(ctx, "usr_maria", 5, "Muy buena app")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	stored, ok := repo.GetUserReview(ctx, "usr_maria")
	require.True(t, ok)
	assert.Equal(t, review.ID, stored.ID)
}

func TestAddReviewReplacesPrevious(t *testing.T) {
	repo := newReviewRepo()
	ctx := context.Background()

	_, err := repo.AddReview(ctx, "usr_maria", 5, "excelente")
	require.NoError(t, err)
	_, err = repo.AddReview(ctx, "usr_maria", 2, "ya no tanto")
	require.NoError(t, err)

	reviews := repo.ListReviews(ctx)
	require.Len(t, reviews, 1)
	assert.Equal(t, 2, reviews[0].Rating)
	assert.Equal(t, "ya no tanto", reviews[0].Comment)
}

func TestAddReviewKeepsOtherUsers(t *testing.T) {
	repo := newReviewRepo()
	ctx := context.Background()

	_, err := repo.AddReview(ctx, "usr_maria", 5, "excelente")
	require.NoError(t, err)
	_, err = repo.AddReview(ctx, "usr_pedro", 3, "normal")
	require.NoError(t, err)

	assert.Len(t, repo.ListReviews(ctx), 2)
}

func TestAddReviewRejectsOutOfRangeRating(t *testing.T) {
	repo := newReviewRepo()
	ctx := context.Background()

	_, err := repo.AddReview(ctx, "usr_maria", 0, "")
	assert.ErrorIs(t, err, entity.ErrInvalidRating)

	_, err = repo.AddReview(ctx, "usr_maria", 6, "")
	assert.ErrorIs(t, err, entity.ErrInvalidRating)

	assert.Empty(t, repo.ListReviews(ctx))
}

func TestGetUserReviewMissing(t *testing.T) {
	repo := newReviewRepo()

	_, ok := repo.GetUserReview(context.Background(), "usr_nobody")
	assert.False(t, ok)
}

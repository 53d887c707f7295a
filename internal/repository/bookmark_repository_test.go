package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desparches/backend/internal/infrastructure/logger"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
	"github.com/desparches/backend/internal/repository"
)

func newBookmarkRepo() *repository.BookmarkRepository {
	return repository.NewBookmarkRepository(recordstore.NewMemoryStore(), logger.NewNopLogger())
}

func TestToggle(t *testing.T) {
	repo := newBookmarkRepo()
	ctx := context.Background()

	assert.False(t, repo.IsSaved(ctx, "evt001"))

	require.NoError(t, repo.Toggle(ctx, "evt001"))
	assert.True(t, repo.IsSaved(ctx, "evt001"))

	require.NoError(t, repo.Toggle(ctx, "evt001"))
	assert.False(t, repo.IsSaved(ctx, "evt001"))
	assert.Empty(t, repo.List(ctx))
}

func TestToggleKeepsOtherIDs(t *testing.T) {
	repo := newBookmarkRepo()
	ctx := context.Background()

	require.NoError(t, repo.Toggle(ctx, "evt001"))
	require.NoError(t, repo.Toggle(ctx, "evt002"))
	require.NoError(t, repo.Toggle(ctx, "evt001"))

	assert.Equal(t, []string{"evt002"}, repo.List(ctx))
}

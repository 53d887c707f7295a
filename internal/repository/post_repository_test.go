package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desparches/backend/internal/infrastructure/idgen"
	"github.com/desparches/backend/internal/infrastructure/logger"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
	"github.com/desparches/backend/internal/repository"
)

func newPostRepo() *repository.PostRepository {
	return repository.NewPostRepository(
		recordstore.NewMemoryStore(),
		logger.NewNopLogger(),
		idgen.NewGenerator(),
		newStepClock(),
	)
}

func TestAddPost(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	post, err := repo.AddPost(ctx, "usr_maria", "data:image/png;base64,abc", "mi parche")
	require.NoError(t, err)
	assert.Equal(t, "usr_maria", post.UserID)
	assert.NotEmpty(t, post.ID)
}

func TestListByUserNewestFirst(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	older, err := repo.AddPost(ctx, "usr_maria", "img1", "")
	require.NoError(t, err)
	newer, err := repo.AddPost(ctx, "usr_maria", "img2", "")
	require.NoError(t, err)
	_, err = repo.AddPost(ctx, "usr_pedro", "img3", "")
	require.NoError(t, err)

	posts := repo.ListByUser(ctx, "usr_maria")
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
}

func TestListAllInsertionOrder(t *testing.T) {
	repo := newPostRepo()
	ctx := context.Background()

	first, err := repo.AddPost(ctx, "usr_maria", "img1", "")
	require.NoError(t, err)
	second, err := repo.AddPost(ctx, "usr_pedro", "img2", "")
	require.NoError(t, err)

	posts := repo.ListAll(ctx)
	require.Len(t, posts, 2)
	assert.Equal(t, first.ID, posts[0].ID)
	assert.Equal(t, second.ID, posts[1].ID)
}

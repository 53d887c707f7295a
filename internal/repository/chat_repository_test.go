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

func newChatRepo() *repository.ChatRepository {
	return repository.NewChatRepository(
		recordstore.NewMemoryStore(),
		logger.NewNopLogger(),
		idgen.NewGenerator(),
		newStepClock(),
	)
}

func TestSend(t *testing.T) {
	repo := newChatRepo()
	ctx := context.Background()
	author := testUser("usr_maria", "maria")

	message, err := repo.Send(ctx, author, "  hola a todos  ")
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, "hola a todos", message.Text)
	assert.Equal(t, author.ID, message.Author.ID)

	messages := repo.ListMessages(ctx)
	require.Len(t, messages, 1)
	assert.Equal(t, message.ID, messages[0].ID)
}

func TestSendBlankTextIsNoOp(t *testing.T) {
	repo := newChatRepo()
	ctx := context.Background()
	author := testUser("usr_maria", "maria")

	message, err := repo.Send(ctx, author, "   ")
	assert.NoError(t, err)
	assert.Nil(t, message)
	assert.Empty(t, repo.ListMessages(ctx))
}

func TestSendWithoutAuthorIsNoOp(t *testing.T) {
	repo := newChatRepo()
	ctx := context.Background()

	message, err := repo.Send(ctx, nil, "hola")
	assert.NoError(t, err)
	assert.Nil(t, message)
	assert.Empty(t, repo.ListMessages(ctx))
}

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
	"github.com/desparches/backend/internal/repository"
)

func newAdminMessageRepo() *repository.AdminMessageRepository {
	return repository.NewAdminMessageRepository(
		recordstore.NewMemoryStore(),
		logger.NewNopLogger(),
		idgen.NewGenerator(),
		newStepClock(),
	)
}

func TestSendAdminMessage(t *testing.T) {
	repo := newAdminMessageRepo()
	ctx := context.Background()
	sender := testUser("usr_maria", "maria")

	message, err := repo.Send(ctx, sender, "Sugerencia", "Más eventos de teatro por favor")
	require.NoError(t, err)
	assert.Equal(t, sender.ID, message.UserID)
	assert.Equal(t, sender.Email, message.UserEmail)

	messages := repo.ListMessages(ctx)
	require.Len(t, messages, 1)
	assert.Equal(t, "Sugerencia", messages[0].Subject)
}

func TestSendAdminMessageRequiresSender(t *testing.T) {
	repo := newAdminMessageRepo()

	_, err := repo.Send(context.Background(), nil, "s", "b")
	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)
}

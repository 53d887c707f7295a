package recordstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/infrastructure/logger"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// brokenStore fails every operation, standing in for an unavailable medium.
type brokenStore struct{}

var _ contract.IRecordStore = brokenStore{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("medium unavailable")
}

func (brokenStore) Put(context.Context, string, []byte) error {
	return errors.New("medium unavailable")
}

func (brokenStore) Delete(context.Context, string) error {
	return errors.New("medium unavailable")
}

func TestReadWriteRoundtrip(t *testing.T) {
	store := recordstore.NewMemoryStore()
	log := logger.NewNopLogger()
	ctx := context.Background()

	require.NoError(t, recordstore.Write(ctx, store, "records", record{Name: "a", Count: 3}))

	got, ok := recordstore.Read[record](ctx, store, log, "records")
	require.True(t, ok)
	assert.Equal(t, record{Name: "a", Count: 3}, got)
}

func TestReadMissingKey(t *testing.T) {
	store := recordstore.NewMemoryStore()
	log := logger.NewNopLogger()

	_, ok := recordstore.Read[record](context.Background(), store, log, "absent")
	assert.False(t, ok)
}

func TestReadCorruptRecordDegradesToAbsent(t *testing.T) {
	store := recordstore.NewMemoryStore()
	log := logger.NewNopLogger()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "records", []byte("{not json")))

	_, ok := recordstore.Read[record](ctx, store, log, "records")
	assert.False(t, ok)
}

func TestReadMediumFailureDegradesToAbsent(t *testing.T) {
	log := logger.NewNopLogger()

	_, ok := recordstore.Read[record](context.Background(), brokenStore{}, log, "records")
	assert.False(t, ok)
}

func TestWriteMediumFailurePropagates(t *testing.T) {
	err := recordstore.Write(context.Background(), brokenStore{}, "records", record{})
	assert.Error(t, err)
}

func TestReadOrSeedWritesSeed(t *testing.T) {
	store := recordstore.NewMemoryStore()
	log := logger.NewNopLogger()
	ctx := context.Background()

	seed := []record{{Name: "seed", Count: 1}}
	got := recordstore.ReadOrSeed(ctx, store, log, "records", seed)
	assert.Equal(t, seed, got)

	// the seed is persisted, so later reads see it
	stored, ok := recordstore.Read[[]record](ctx, store, log, "records")
	require.True(t, ok)
	assert.Equal(t, seed, stored)
}

func TestReadOrSeedPrefersExisting(t *testing.T) {
	store := recordstore.NewMemoryStore()
	log := logger.NewNopLogger()
	ctx := context.Background()

	existing := []record{{Name: "existing", Count: 7}}
	require.NoError(t, recordstore.Write(ctx, store, "records", existing))

	got := recordstore.ReadOrSeed(ctx, store, log, "records", []record{{Name: "seed"}})
	assert.Equal(t, existing, got)
}

func TestReadOrSeedTotalOnBrokenMedium(t *testing.T) {
	log := logger.NewNopLogger()

	seed := []record{{Name: "seed", Count: 1}}
	got := recordstore.ReadOrSeed(context.Background(), brokenStore{}, log, "records", seed)
	assert.Equal(t, seed, got)
}

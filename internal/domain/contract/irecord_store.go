package contract

import "context"

// IRecordStore is the durable key-value medium underneath every repository.
// One serialized record per logical collection, addressed by a stable name.
// Implementations only move bytes; typed access and fail-soft decoding live
// in the recordstore codec helpers.
type IRecordStore interface {
	// Get returns the raw record for key. The boolean is false when the key
	// is absent; an error means the medium itself failed.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put writes the raw record for key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes the record for key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// Package recordstore provides the durable record store backends and the
// typed codec on top of them. Every repository is built purely on this
// package, so the same logic can target any key-value medium.
package recordstore

import (
	"context"
	"encoding/json"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/infrastructure/metrics"
)

// Read decodes the record stored under key. A missing record, a failing
// medium or a corrupt payload all degrade to "absent": the incident is
// logged and never surfaced to the caller.
func Read[T any](ctx context.Context, store contract.IRecordStore, log contract.IAppLogger, key string) (T, bool) {
	var zero T
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Warnf("record store: reading %q: %v", key, err)
		metrics.RecordReadFailures.WithLabelValues(key).Inc()
		return zero, false
	}
	if !ok {
		return zero, false
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Warnf("record store: record %q is corrupt, treating as absent: %v", key, err)
		metrics.RecordReadFailures.WithLabelValues(key).Inc()
		return zero, false
	}
	return value, true
}

// Write serializes value under key, replacing any previous record. Medium
// failures (including quota exhaustion) propagate to the caller.
func Write[T any](ctx context.Context, store contract.IRecordStore, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, key, raw); err != nil {
		return err
	}
	metrics.RecordWrites.WithLabelValues(key).Inc()
	return nil
}

// ReadOrSeed returns the record under key, writing and returning seed when
// the record is absent or unreadable. The operation is total: a failed seed
// write is logged and the seed value is still returned.
func ReadOrSeed[T any](ctx context.Context, store contract.IRecordStore, log contract.IAppLogger, key string, seed T) T {
	if value, ok := Read[T](ctx, store, log, key); ok {
		return value
	}
	if err := Write(ctx, store, key, seed); err != nil {
		log.Warnf("record store: seeding %q: %v", key, err)
	}
	return seed
}

package recordstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/desparches/backend/internal/domain/contract"
)

// RedisStore keeps each record under a namespaced Redis key with no
// expiration, letting several processes share one storage area.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

var _ contract.IRecordStore = (*RedisStore)(nil)

func redisKey(key string) string { return fmt.Sprintf("desparches:record:%s", key) }

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.rdb.Get(ctx, redisKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, redisKey(key), value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, redisKey(key)).Err()
}

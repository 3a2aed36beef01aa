package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	fieldValue   = "value"
	fieldSavedAt = "saved_at"
)

type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{Client: client, Prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.Prefix + k
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, error) {
	fields, err := s.Client.HGetAll(ctx, s.key(key)).Result()
	if err != nil {
		return Entry{}, err
	}
	value, ok := fields[fieldValue]
	if !ok {
		return Entry{}, ErrNotFound
	}

	entry := Entry{Value: []byte(value)}
	if raw, ok := fields[fieldSavedAt]; ok {
		if nanos, err := strconv.ParseInt(raw, 10, 64); err == nil {
			entry.SavedAt = time.Unix(0, nanos)
		}
	}
	return entry, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.Client.HSet(ctx, s.key(key), map[string]interface{}{
		fieldValue:   value,
		fieldSavedAt: time.Now().UnixNano(),
	}).Err()
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, s.key(k))
	}
	return s.Client.Del(ctx, prefixed...).Err()
}

var _ Store = (*RedisStore)(nil)

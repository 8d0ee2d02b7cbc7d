package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps blobs in Redis under an optional key prefix
type RedisStore struct {
	Client  *redis.Client
	Ctx     context.Context
	prefix  string
	timeout time.Duration
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		Client:  client,
		Ctx:     context.Background(),
		prefix:  prefix,
		timeout: 2 * time.Second,
	}
}

// DialRedis connects to addr and checks the server answers
func DialRedis(addr, password string, db int, prefix string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	rs := NewRedisStore(client, prefix)
	ctx, cancel := context.WithTimeout(rs.Ctx, rs.timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}
	return rs, nil
}

func (rs *RedisStore) key(key string) string {
	return rs.prefix + key
}

func (rs *RedisStore) Get(key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(rs.Ctx, rs.timeout)
	defer cancel()

	val, err := rs.Client.Get(ctx, rs.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (rs *RedisStore) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(rs.Ctx, rs.timeout)
	defer cancel()

	return rs.Client.Set(ctx, rs.key(key), value, 0).Err()
}

func (rs *RedisStore) Remove(key string) error {
	ctx, cancel := context.WithTimeout(rs.Ctx, rs.timeout)
	defer cancel()

	return rs.Client.Del(ctx, rs.key(key)).Err()
}

// Close releases the client connection pool
func (rs *RedisStore) Close() error {
	return rs.Client.Close()
}

package blobstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

var _ repository.BlobStore = (*RedisStore)(nil)

// RedisOptions parámetros de conexión a Redis.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore guarda cada clave como un string de Redis, sin expiración.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore abre el cliente y verifica la conexión con PING.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("blobstore: ping redis %s: %w", opts.Addr, err)
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient reutiliza un cliente existente.
func NewRedisStoreWithClient(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("blobstore: redis GET %s: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("blobstore: redis SET %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("blobstore: redis DEL %s: %w", key, err)
	}
	return nil
}

// Close libera el cliente.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

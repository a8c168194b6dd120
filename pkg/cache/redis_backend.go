package cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-redis/redis/v8"
)

// compressionThreshold and compressionMarker are carried over from the
// teacher's tenant-aware Redis client: values at or above the threshold are
// gzip-compressed, prefixed with the marker byte so a reader can tell
// compressed payloads from raw ones without a side-channel flag.
const (
	compressionThreshold = 1024
	compressionMarker    = 0x1F
)

// RedisConfig configures the Redis L2 backend.
type RedisConfig struct {
	Addr               string
	Password           string
	DB                 int
	PoolSize           int
	EnableCompression  bool
	CompressionLevel   int
}

// redisBackend implements Backend over go-redis, reusing the teacher's
// gzip-above-threshold compression scheme (pkg/cache/redis.go's
// compressData/decompressData) but dropping everything tenant-scoped: no
// TenantIDKey namespacing, no pattern/bulk/TTL-introspection surface, no
// in-process memory-cache layer (that concern now belongs to this
// package's own ristretto L1 in cache.go). What's left is exactly the
// get/set/close contract the two-tier cache needs from its L2.
type redisBackend struct {
	client *redis.Client
	cfg    RedisConfig
}

// NewRedisBackend connects to Redis and returns a Backend. The connection
// is verified with a bounded Ping before returning.
func NewRedisBackend(cfg RedisConfig) (Backend, error) {
	if cfg.CompressionLevel == 0 {
		cfg.CompressionLevel = gzip.DefaultCompression
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("cache: failed to connect to redis: %w", err)
	}

	return &redisBackend{client: client, cfg: cfg}, nil
}

func (b *redisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	decoded, err := b.decompress(raw)
	if err != nil {
		return nil, false, err
	}
	return decoded, true, nil
}

func (b *redisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	encoded, err := b.compress(value)
	if err != nil {
		return err
	}
	return b.client.Set(ctx, key, encoded, ttl).Err()
}

func (b *redisBackend) Close() error {
	return b.client.Close()
}

func (b *redisBackend) compress(data []byte) ([]byte, error) {
	if !b.cfg.EnableCompression || len(data) < compressionThreshold {
		return data, nil
	}
	var buf bytes.Buffer
	buf.WriteByte(compressionMarker)
	w, err := gzip.NewWriterLevel(&buf, b.cfg.CompressionLevel)
	if err != nil {
		return nil, fmt.Errorf("cache: failed to create gzip writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("cache: failed to compress data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("cache: failed to finalize compression: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *redisBackend) decompress(data []byte) ([]byte, error) {
	if len(data) == 0 || data[0] != compressionMarker {
		return data, nil
	}
	r, err := gzip.NewReader(bytes.NewReader(data[1:]))
	if err != nil {
		return nil, fmt.Errorf("cache: %w: %v", ErrInvalidData, err)
	}
	defer r.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("cache: failed to decompress: %w", err)
	}
	return buf.Bytes(), nil
}

// ErrInvalidData indicates a corrupted or unexpectedly shaped cached payload.
var ErrInvalidData = errors.New("cache: invalid data format")

package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrCacheMiss = errors.New("cache miss")
	// ErrInvalidArgument is never retried.
	ErrInvalidArgument = errors.New("invalid cache argument")
)

// Store is a byte-oriented key/value store with per-entry TTL.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns ErrCacheMiss for absent or expired keys.
	Get(ctx context.Context, key string) ([]byte, error)
}

package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// MemoryStore is an in-process Store. Expired entries are removed in the
// background until Close is called, whether or not they are read again.
type MemoryStore struct {
	items     *ttlcache.Cache[string, []byte]
	closeOnce sync.Once
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	items := ttlcache.New[string, []byte](
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	go items.Start()
	return &MemoryStore{items: items}
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" || ttl <= 0 {
		return fmt.Errorf("%w: key=%q ttl=%s", ErrInvalidArgument, key, ttl)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	cp := make([]byte, len(value))
	copy(cp, value)

	s.items.Set(key, cp, ttl)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	item := s.items.Get(key)
	if item == nil {
		return nil, ErrCacheMiss
	}
	v := item.Value()
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Len reports the entries currently held, expired ones not yet swept
// included.
func (s *MemoryStore) Len() int {
	return s.items.Len()
}

// Close stops the background expiry. It is safe to call more than once.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(s.items.Stop)
	return nil
}

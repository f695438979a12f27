package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMemoryStore_TTL(t *testing.T) {
	s := newTestMemoryStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "payment:1", []byte("v"), 50*time.Millisecond))

	got, err := s.Get(ctx, "payment:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	time.Sleep(80 * time.Millisecond)
	_, err = s.Get(ctx, "payment:1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStore_ExpiredEntriesAreSweptWithoutReads(t *testing.T) {
	s := newTestMemoryStore(t)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		require.NoError(t, s.Set(ctx, fmt.Sprintf("payment:%d", i), []byte("v"), 20*time.Millisecond))
	}
	require.NoError(t, s.Set(ctx, "payment:live", []byte("v"), time.Hour))

	require.Eventually(t, func() bool { return s.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	got, err := s.Get(ctx, "payment:live")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	s := newTestMemoryStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestMemoryStore_InvalidArguments(t *testing.T) {
	s := newTestMemoryStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Set(ctx, "", []byte("v"), time.Hour), ErrInvalidArgument)
	assert.ErrorIs(t, s.Set(ctx, "k", []byte("v"), 0), ErrInvalidArgument)
	_, err := s.Get(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	s := newTestMemoryStore(t)
	ctx := context.Background()
	v := []byte("abc")

	require.NoError(t, s.Set(ctx, "k", v, time.Hour))
	v[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestMemoryStore_Concurrent(t *testing.T) {
	s := newTestMemoryStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("payment:%d", i%10)
			_ = s.Set(ctx, key, []byte(key), time.Minute)
			_, _ = s.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("payment:%d", i)
		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, key, string(got))
	}
}

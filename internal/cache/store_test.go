package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[string]()

	_, ok, err := s.Get(ctx, "course:bn")
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Set(ctx, "course:bn", Entry[string]{Value: "v1", StoredAt: at}))
	require.NoError(t, s.Set(ctx, "course:bn", Entry[string]{Value: "v2", StoredAt: at.Add(time.Minute)}))

	e, ok, err := s.Get(ctx, "course:bn")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", e.Value)
	assert.Equal(t, at.Add(time.Minute), e.StoredAt)

	_, ok, _ = s.Get(ctx, "course:en")
	assert.False(t, ok)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = s.Set(ctx, "k", Entry[int]{Value: n})
		}(i)
		go func() {
			defer wg.Done()
			_, _, _ = s.Get(ctx, "k")
		}()
	}
	wg.Wait()

	e, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.GreaterOrEqual(t, e.Value, 0)
	assert.Less(t, e.Value, 50)
}

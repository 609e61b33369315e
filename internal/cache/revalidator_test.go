package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// countingLoader returns "v1", "v2", ... and counts calls.
type countingLoader struct {
	calls atomic.Int32
	err   error
}

func (l *countingLoader) Load(ctx context.Context) (string, error) {
	n := l.calls.Add(1)
	if l.err != nil {
		return "", l.err
	}
	return "v" + string(rune('0'+n)), nil
}

func newTestRevalidator(clock *fakeClock, grace time.Duration) *Revalidator[string] {
	return NewRevalidator[string](NewMemoryStore[string](), Options{
		Window:     time.Hour,
		StaleGrace: grace,
		Now:        clock.Now,
	}, zap.NewNop())
}

func TestRevalidator_ServesFromCacheWithinWindow(t *testing.T) {
	clock := newFakeClock()
	r := newTestRevalidator(clock, 0)
	loader := &countingLoader{}
	ctx := context.Background()

	v, state, err := r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)
	assert.Equal(t, StateEmpty, state)

	clock.Advance(59 * time.Minute)
	v, state, err = r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)
	assert.Equal(t, StateFresh, state)
	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestRevalidator_ReloadsAfterWindow(t *testing.T) {
	clock := newFakeClock()
	r := newTestRevalidator(clock, 0)
	loader := &countingLoader{}
	ctx := context.Background()

	_, _, err := r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	assert.Equal(t, StateExpired, r.State(ctx, "bn"))

	v, state, err := r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
	assert.Equal(t, StateExpired, state)
	assert.Equal(t, int32(2), loader.calls.Load())
	assert.Equal(t, StateFresh, r.State(ctx, "bn"))
}

func TestRevalidator_KeysAreIndependent(t *testing.T) {
	clock := newFakeClock()
	r := newTestRevalidator(clock, 0)
	loader := &countingLoader{}
	ctx := context.Background()

	_, _, err := r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)
	_, state, err := r.Get(ctx, "en", loader.Load)
	require.NoError(t, err)

	assert.Equal(t, StateEmpty, state)
	assert.Equal(t, int32(2), loader.calls.Load())
}

func TestRevalidator_ServesStaleWhileRefreshing(t *testing.T) {
	clock := newFakeClock()
	r := newTestRevalidator(clock, time.Hour)
	loader := &countingLoader{}
	ctx := context.Background()

	_, _, err := r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)

	clock.Advance(90 * time.Minute)
	v, state, err := r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)
	assert.Equal(t, StateStale, state)

	r.Wait()
	assert.Equal(t, int32(2), loader.calls.Load())

	v, state, err = r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
	assert.Equal(t, StateFresh, state)
}

func TestRevalidator_FailedRefreshKeepsStaleEntry(t *testing.T) {
	clock := newFakeClock()
	r := newTestRevalidator(clock, time.Hour)
	loader := &countingLoader{}
	ctx := context.Background()

	_, _, err := r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)

	loader.err = errors.New("upstream down")
	clock.Advance(61 * time.Minute)

	v, _, err := r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)
	r.Wait()

	assert.Equal(t, StateStale, r.State(ctx, "bn"))
	v, _, err = r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)
}

func TestRevalidator_FailuresAreNotCached(t *testing.T) {
	clock := newFakeClock()
	r := newTestRevalidator(clock, 0)
	loader := &countingLoader{err: errors.New("boom")}
	ctx := context.Background()

	_, _, err := r.Get(ctx, "bn", loader.Load)
	assert.Error(t, err)
	assert.Equal(t, StateEmpty, r.State(ctx, "bn"))

	loader.err = nil
	v, _, err := r.Get(ctx, "bn", loader.Load)
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
	assert.Equal(t, int32(2), loader.calls.Load())
}

func TestRevalidator_CoalescesConcurrentMisses(t *testing.T) {
	clock := newFakeClock()
	r := newTestRevalidator(clock, 0)

	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "doc", nil
	}

	const readers = 20
	var started, done sync.WaitGroup
	results := make([]string, readers)
	started.Add(readers)
	done.Add(readers)
	for i := 0; i < readers; i++ {
		go func(i int) {
			defer done.Done()
			started.Done()
			v, _, err := r.Get(context.Background(), "bn", loader)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	started.Wait()
	// give every reader a chance to join the in-flight load
	time.Sleep(50 * time.Millisecond)
	close(release)
	done.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, "doc", v)
	}
}

func TestRevalidator_CallerCancellation(t *testing.T) {
	clock := newFakeClock()
	r := newTestRevalidator(clock, 0)

	release := make(chan struct{})
	loaded := make(chan struct{})
	loader := func(ctx context.Context) (string, error) {
		<-release
		defer close(loaded)
		return "doc", ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := r.Get(ctx, "bn", loader)
	assert.ErrorIs(t, err, context.Canceled)

	// the shared load is detached from the cancelled caller and still stores its result
	close(release)
	<-loaded
	assert.Eventually(t, func() bool {
		return r.State(context.Background(), "bn") == StateFresh
	}, time.Second, 10*time.Millisecond)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "fresh", StateFresh.String())
	assert.Equal(t, "stale", StateStale.String())
	assert.Equal(t, "expired", StateExpired.String())
	assert.Equal(t, "unknown", State(42).String())
}

package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// State is the freshness of a cached key.
type State int

const (
	// StateEmpty means nothing was ever loaded successfully for the key.
	StateEmpty State = iota
	// StateFresh entries are served without touching the loader.
	StateFresh
	// StateStale entries are served while one background refresh runs.
	StateStale
	// StateExpired entries are too old to serve; the caller waits for a reload.
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFresh:
		return "fresh"
	case StateStale:
		return "stale"
	case StateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Loader produces the value for a key. It is called at most once at a time per key.
type Loader[V any] func(ctx context.Context) (V, error)

// Options configures a Revalidator.
type Options struct {
	// Window is how long a loaded value is served without revalidation.
	Window time.Duration
	// StaleGrace is how long after Window the old value is still served
	// while a refresh runs in the background.
	StaleGrace time.Duration
	// LoadTimeout bounds a single load, including background refreshes.
	LoadTimeout time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Revalidator serves values from a Store and reloads them once they age out.
//
// Concurrent misses for one key share a single load. Failed loads are never
// stored, so a previous good entry keeps being served until it expires.
type Revalidator[V any] struct {
	store       Store[V]
	window      time.Duration
	grace       time.Duration
	loadTimeout time.Duration
	now         func() time.Time
	logger      *zap.Logger

	group      singleflight.Group
	refreshing sync.Map
	wg         sync.WaitGroup
}

// NewRevalidator creates a revalidating cache over store.
func NewRevalidator[V any](store Store[V], opts Options, logger *zap.Logger) *Revalidator[V] {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Revalidator[V]{
		store:       store,
		window:      opts.Window,
		grace:       opts.StaleGrace,
		loadTimeout: opts.LoadTimeout,
		now:         opts.Now,
		logger:      logger,
	}
}

// Get returns the value for key, loading it with load when the cache cannot serve it.
// The returned State is the state the key was in when Get was called.
func (r *Revalidator[V]) Get(ctx context.Context, key string, load Loader[V]) (V, State, error) {
	entry, state := r.lookup(ctx, key)

	switch state {
	case StateFresh:
		return entry.Value, state, nil
	case StateStale:
		r.refreshAsync(key, load)
		return entry.Value, state, nil
	}

	v, err := r.load(ctx, key, load)
	return v, state, err
}

// State reports the current state of key without loading anything.
func (r *Revalidator[V]) State(ctx context.Context, key string) State {
	_, state := r.lookup(ctx, key)
	return state
}

// Wait blocks until background refreshes started so far have finished.
func (r *Revalidator[V]) Wait() {
	r.wg.Wait()
}

func (r *Revalidator[V]) lookup(ctx context.Context, key string) (Entry[V], State) {
	entry, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return entry, StateEmpty
	}
	if !ok {
		return entry, StateEmpty
	}

	age := r.now().Sub(entry.StoredAt)
	switch {
	case age < r.window:
		return entry, StateFresh
	case age < r.window+r.grace:
		return entry, StateStale
	default:
		return entry, StateExpired
	}
}

func (r *Revalidator[V]) load(ctx context.Context, key string, load Loader[V]) (V, error) {
	var zero V

	// the shared load must outlive the caller that happened to start it
	ch := r.group.DoChan(key, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.loadTimeout)
		defer cancel()

		v, err := load(lctx)
		if err != nil {
			return zero, err
		}

		if err := r.store.Set(lctx, key, Entry[V]{Value: v, StoredAt: r.now()}); err != nil {
			r.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, _ := res.Val.(V)
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (r *Revalidator[V]) refreshAsync(key string, load Loader[V]) {
	if _, busy := r.refreshing.LoadOrStore(key, struct{}{}); busy {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.refreshing.Delete(key)

		if _, err := r.load(context.Background(), key, load); err != nil {
			r.logger.Warn("background refresh failed, serving stale entry",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}()
}

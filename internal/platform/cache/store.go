package cache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

var errNilLoader = errors.New("cache: loader is required")

type item struct {
	value   any
	expires time.Time
}

// Store is an in-process TTL cache. A zero ttl keeps items until they are
// deleted.
type Store struct {
	ttl   time.Duration
	clock clockwork.Clock
	group singleflight.Group

	mu    sync.RWMutex
	items map[string]item
	// gen moves on every delete so loads that started earlier are not stored.
	gen uint64
}

type Option func(*Store)

// WithClock replaces the wall clock used for expiry.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		ttl:   ttl,
		clock: clockwork.NewRealClock(),
		items: make(map[string]item),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.expired(it) {
		s.mu.Lock()
		if cur, ok := s.items[key]; ok && s.expired(cur) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return it.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	it := item{value: value}
	if s.ttl > 0 {
		it.expires = s.clock.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.items, key)
	s.gen++
	s.mu.Unlock()
}

// DeletePrefix drops every key that starts with prefix. An empty prefix is
// ignored rather than clearing the store.
func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
		}
	}
	s.gen++
	s.mu.Unlock()
}

// Len counts live and not yet evicted items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// GetOrLoad returns the cached value for key or calls loader once for all
// concurrent callers of the same key. Loader errors are not cached, and a
// value loaded across a Delete or DeletePrefix is returned but not stored.
// The loader does not inherit the first caller's cancellation.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, errNilLoader
	}
	if key == "" {
		return loader(ctx)
	}
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	gen := s.generation()
	flight := key + "#" + strconv.FormatUint(gen, 10)
	value, err, _ := s.group.Do(flight, func() (any, error) {
		if value, ok := s.Get(ctx, key); ok {
			return value, nil
		}
		loaded, err := loader(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.setIfGeneration(key, loaded, gen)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Store) generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

func (s *Store) setIfGeneration(key string, value any, gen uint64) {
	it := item{value: value}
	if s.ttl > 0 {
		it.expires = s.clock.Now().Add(s.ttl)
	}

	s.mu.Lock()
	if s.gen == gen {
		s.items[key] = it
	}
	s.mu.Unlock()
}

func (s *Store) expired(it item) bool {
	return !it.expires.IsZero() && !s.clock.Now().Before(it.expires)
}

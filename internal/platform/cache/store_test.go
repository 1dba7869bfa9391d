package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return []int64{1, 2, 3}, nil
	}

	const callers = 16
	var wg sync.WaitGroup
	results := make(chan any, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.GetOrLoad(t.Context(), "analytics:team:1:matches", loader)
			if err != nil {
				results <- err
				return
			}
			results <- v
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for v := range results {
		if err, ok := v.(error); ok {
			t.Fatalf("unexpected error: %v", err)
		}
		if ids, _ := v.([]int64); len(ids) != 3 {
			t.Fatalf("unexpected value: %#v", v)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	boom := errors.New("boom")
	var calls int

	loader := func(context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(t.Context(), "k", loader); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	v, err := store.GetOrLoad(t.Context(), "k", loader)
	if err != nil || v != "ok" {
		t.Fatalf("unexpected second load: v=%v err=%v", v, err)
	}
	if _, err := store.GetOrLoad(t.Context(), "k", nil); err == nil {
		t.Fatalf("expected error for nil loader")
	}
}

func TestStore_ExpiresWithClock(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	store := NewStore(30*time.Second, WithClock(clock))
	store.Set(t.Context(), "k", 1)

	clock.Advance(29 * time.Second)
	if _, ok := store.Get(t.Context(), "k"); !ok {
		t.Fatalf("expected value before ttl")
	}

	clock.Advance(time.Second)
	if _, ok := store.Get(t.Context(), "k"); ok {
		t.Fatalf("expected value to expire at ttl")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired item to be evicted, len=%d", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := t.Context()
	store.Set(ctx, "analytics:team:1:matches", 1)
	store.Set(ctx, "analytics:team:1:goals", 2)
	store.Set(ctx, "analytics:team:12:matches", 3)

	store.DeletePrefix(ctx, "analytics:team:1:")
	store.DeletePrefix(ctx, "")

	if _, ok := store.Get(ctx, "analytics:team:12:matches"); !ok {
		t.Fatalf("expected other team to survive")
	}
	if store.Len() != 1 {
		t.Fatalf("unexpected len after prefix delete: %d", store.Len())
	}
}

func TestStore_GetOrLoad_SkipsStoreAfterInvalidation(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	const key = "analytics:team:1:matches"
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan any, 1)
	go func() {
		v, err := store.GetOrLoad(t.Context(), key, func(context.Context) (any, error) {
			close(started)
			<-release
			return "before", nil
		})
		if err != nil {
			done <- err
			return
		}
		done <- v
	}()

	<-started
	store.DeletePrefix(t.Context(), "analytics:team:1:")
	close(release)

	if v := <-done; v != "before" {
		t.Fatalf("in-flight caller got %v, want its own load", v)
	}
	if v, ok := store.Get(t.Context(), key); ok {
		t.Fatalf("expected invalidated load to stay out of the cache, got %v", v)
	}

	v, err := store.GetOrLoad(t.Context(), key, func(context.Context) (any, error) {
		return "after", nil
	})
	if err != nil || v != "after" {
		t.Fatalf("unexpected reload: v=%v err=%v", v, err)
	}
	if v, ok := store.Get(t.Context(), key); !ok || v != "after" {
		t.Fatalf("expected fresh load cached, got %v ok=%v", v, ok)
	}
}

func TestStore_GetOrLoad_CallerCancelDoesNotFailWaiters(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	const key = "analytics:team:2:players"
	started := make(chan struct{})
	release := make(chan struct{})

	loader := func(ctx context.Context) (any, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return "players", nil
	}

	firstCtx, cancel := context.WithCancel(t.Context())
	first := make(chan error, 1)
	go func() {
		_, err := store.GetOrLoad(firstCtx, key, loader)
		first <- err
	}()
	<-started

	second := make(chan any, 1)
	go func() {
		v, err := store.GetOrLoad(t.Context(), key, loader)
		if err != nil {
			second <- err
			return
		}
		second <- v
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	close(release)

	if err := <-first; err != nil {
		t.Fatalf("first caller: %v", err)
	}
	if v := <-second; v != "players" {
		t.Fatalf("waiter got %v, want players", v)
	}
}

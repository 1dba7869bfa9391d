package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var ErrOpen = errors.New("circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

// BreakerConfig tunes a Breaker. Zero fields fall back to the defaults of
// DefaultBreakerConfig.
type BreakerConfig struct {
	FailureThreshold int
	Cooldown         time.Duration
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		Cooldown:         15 * time.Second,
	}
}

// Breaker stops calls to a dependency after FailureThreshold consecutive
// failures. After Cooldown one probe is let through; its outcome closes or
// reopens the circuit.
type Breaker struct {
	threshold int
	cooldown  time.Duration
	clock     clockwork.Clock

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	probing  bool
}

func NewBreaker(cfg BreakerConfig, clock clockwork.Clock) *Breaker {
	defaults := DefaultBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaults.Cooldown
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Breaker{
		threshold: cfg.FailureThreshold,
		cooldown:  cfg.Cooldown,
		clock:     clock,
		state:     StateClosed,
	}
}

// Do runs fn unless the circuit is open. Context cancellation is reported
// to the caller but never counts as a dependency failure.
func (b *Breaker) Do(fn func() error) error {
	if err := b.acquire(); err != nil {
		return err
	}

	err := fn()
	switch {
	case err == nil:
		b.succeed()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		b.release()
	default:
		b.fail()
	}
	return err
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.cooledDown() {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) acquire() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if !b.cooledDown() {
			return ErrOpen
		}
		b.state = StateHalfOpen
		b.probing = true
	case StateHalfOpen:
		if b.probing {
			return ErrOpen
		}
		b.probing = true
	}
	return nil
}

func (b *Breaker) succeed() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state = StateClosed
	b.failures = 0
	b.probing = false
}

func (b *Breaker) fail() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.probing = false
	if b.state == StateHalfOpen {
		b.trip()
		return
	}
	b.failures++
	if b.failures >= b.threshold {
		b.trip()
	}
}

func (b *Breaker) release() {
	b.mu.Lock()
	b.probing = false
	b.mu.Unlock()
}

func (b *Breaker) trip() {
	b.state = StateOpen
	b.openedAt = b.clock.Now()
	b.failures = 0
}

func (b *Breaker) cooledDown() bool {
	return b.clock.Since(b.openedAt) >= b.cooldown
}

// internal/countdown/timer.go
//
// Countdown / rollover timer.
//
// A Timer polls at a fixed interval, computes the time left until the next
// day boundary and fires the rollover callback once that reaches zero. It is
// the only recurring background activity in the server.
//
// Only one run is ever active: Start cancels the previous run and waits for
// it to exit before launching a new one. Stop is idempotent.

package countdown

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Timer drives day rollover.
type Timer struct {
	interval time.Duration
	boundary func(now time.Time) time.Time
	fire     func(ctx context.Context)
	tick     func(remaining time.Duration)
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock overrides the wall clock (tests).
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// WithTick registers a callback invoked on every poll with the time left.
func WithTick(fn func(remaining time.Duration)) Option {
	return func(t *Timer) { t.tick = fn }
}

// New builds a stopped Timer. boundary returns the next rollover instant for
// a given now; fire is called each time that instant is reached.
func New(interval time.Duration, boundary func(time.Time) time.Time, fire func(context.Context), opts ...Option) *Timer {
	t := &Timer{
		interval: interval,
		boundary: boundary,
		fire:     fire,
		now:      time.Now,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Start launches the polling loop, replacing any previous one.
// The loop stops when ctx is cancelled or Stop is called.
func (t *Timer) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.cancel, t.done = cancel, done
	go t.run(ctx, done)
}

// Stop cancels the running loop, if any, and waits for it to exit.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Running reports whether a loop is active.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done == nil {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

func (t *Timer) stopLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel, t.done = nil, nil
}

func (t *Timer) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	deadline := t.boundary(t.now())
	log.Debug().Time("next", deadline).Msg("countdown started")

	check := func() {
		remaining := deadline.Sub(t.now())
		if remaining <= 0 {
			log.Info().Time("boundary", deadline).Msg("day boundary reached")
			t.fire(ctx)
			deadline = t.boundary(t.now())
			remaining = deadline.Sub(t.now())
		}
		if t.tick != nil {
			t.tick(remaining)
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

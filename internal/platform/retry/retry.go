// Package retry wraps an operation with bounded retries and exponential
// backoff. Terminal errors (client-side, 4xx-mapped) propagate immediately;
// everything else is retried with jittered backoff until attempts run out.
// Classification is decided where the error is constructed (platform/errors
// codes), never inspected ad hoc here.
package retry

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	perr "falnama/internal/platform/errors"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
	defaultMaxDelay    = 10 * time.Second
	defaultMultiplier  = 2.0
)

// Options configures a Runner. Zero fields take the defaults above.
type Options struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64

	// OnRetry is invoked with (attempt, err) before each backoff sleep.
	// attempt is 1-based: the retry about to happen. Never called for
	// terminal errors or after the final attempt.
	OnRetry func(attempt int, err error)
}

// Runner executes operations with retry state that callers can observe.
// One logical operation in flight per Runner; concurrent Do calls on the
// same Runner are not serialized here, callers must do that themselves.
type Runner struct {
	opts Options

	mu       sync.Mutex
	attempt  int
	retrying bool
	gen      uint64 // bumped by Reset to cancel in-flight retries

	// seams for tests
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func() float64 // uniform in [0, 1)
}

// New constructs a Runner, applying defaults for zero options
func New(opts Options) *Runner {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = defaultBaseDelay
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = defaultMaxDelay
	}
	if opts.Multiplier <= 0 {
		opts.Multiplier = defaultMultiplier
	}
	return &Runner{
		opts:   opts,
		sleep:  sleepCtx,
		jitter: rand.Float64,
	}
}

// Attempt returns the number of retries performed by the current execution
func (r *Runner) Attempt() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempt
}

// Retrying reports whether the runner is between a failure and its next attempt
func (r *Runner) Retrying() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retrying
}

// Reset clears the attempt counter and retrying flag and cooperatively cancels
// further retries of any execution still in flight. The cancellation is checked
// at retry boundaries only; an attempt already running is not interrupted.
func (r *Runner) Reset() {
	r.mu.Lock()
	r.attempt = 0
	r.retrying = false
	r.gen++
	r.mu.Unlock()
}

// Do runs fn with the runner's retry policy and returns its result.
// Use the package-level Do for a typed result.
func (r *Runner) Do(ctx context.Context, fn func(context.Context) (any, error)) (any, error) {
	r.mu.Lock()
	r.attempt = 0
	r.retrying = false
	gen := r.gen
	r.mu.Unlock()

	var lastErr error
	for i := 0; i < r.opts.MaxAttempts; i++ {
		out, err := fn(ctx)
		if err == nil {
			r.mu.Lock()
			r.retrying = false
			r.mu.Unlock()
			return out, nil
		}
		lastErr = err

		if perr.Terminal(err) {
			r.mu.Lock()
			r.retrying = false
			r.mu.Unlock()
			return nil, err
		}
		if i == r.opts.MaxAttempts-1 {
			break
		}
		if r.cancelled(gen) || ctx.Err() != nil {
			break
		}

		d := r.delay(i)
		r.mu.Lock()
		r.attempt = i + 1
		r.retrying = true
		r.mu.Unlock()
		if r.opts.OnRetry != nil {
			r.opts.OnRetry(i+1, err)
		}
		if err := r.sleep(ctx, d); err != nil {
			break
		}
		if r.cancelled(gen) {
			break
		}
	}

	r.mu.Lock()
	r.retrying = false
	r.mu.Unlock()
	return nil, lastErr
}

// delay computes min(base*mult^i, max) scaled by a jitter factor in [0.5, 1.0)
func (r *Runner) delay(attemptIdx int) time.Duration {
	d := float64(r.opts.BaseDelay)
	for i := 0; i < attemptIdx; i++ {
		d *= r.opts.Multiplier
	}
	if d > float64(r.opts.MaxDelay) {
		d = float64(r.opts.MaxDelay)
	}
	factor := 0.5 + 0.5*r.jitter()
	return time.Duration(d * factor)
}

func (r *Runner) cancelled(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen != gen
}

// sleepCtx sleeps for d or until ctx is done, whichever comes first
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do runs fn with r's retry policy and a typed result
func Do[T any](ctx context.Context, r *Runner, fn func(context.Context) (T, error)) (T, error) {
	out, err := r.Do(ctx, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	v, _ := out.(T)
	return v, nil
}

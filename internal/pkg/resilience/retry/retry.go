// Package retry re-runs operations that fail for transient reasons, such as
// a ledger commit that lost a revision race or a storage backend that is
// still starting. It wraps avast/retry-go with exponential backoff.
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithRetryIf(func(err error) bool {
//	        return errors.Is(err, ledger.ErrRevisionConflict)
//	    }),
//	)
//	err := r.Execute(ctx, commit)
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry runs an operation until it succeeds, the attempts run out, the
// error is not retryable or ctx is done.
type Retry interface {
	// Execute calls operation at least once. operation must be safe to run
	// more than once.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint             // total attempts, including the first one
	delay       time.Duration    // backoff base
	maxDelay    time.Duration    // backoff cap
	lastErrOnly bool             // return the last error instead of all of them
	retryIf     func(error) bool // whether an error deserves another attempt
	onRetry     func(attempt uint, err error)
}

// Option configures New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry with 3 attempts, a 1s base delay capped at 5s, every
// error retried and only the last error returned, unless opts say otherwise.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		retryIf:     func(error) bool { return true },
		onRetry:     func(uint, error) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(r.cfg.retryIf),
		retry.OnRetry(r.cfg.onRetry),
		retry.Context(ctx),
	)
}

// WithAttempts sets the total number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the delay before the first retry. Later delays double.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between two attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly chooses between returning the error of the final attempt
// (true) and the errors of every attempt joined together (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf restricts retries to errors for which fn returns true. Any
// other error is returned right away.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// WithOnRetry registers fn to be called after every failed attempt that
// will be retried. attempt starts at 0.
func WithOnRetry(fn func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

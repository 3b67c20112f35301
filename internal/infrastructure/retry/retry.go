// Package retry implements exponential backoff with jitter for
// operations that fail transiently, such as reading offer dumps from
// disk while a source is rewriting them.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config shapes the retry schedule.
type Config struct {
	// MaxAttempts bounds the total number of calls, the first one
	// included. Values below one are read as one.
	MaxAttempts int

	// InitialDelay is the pause after the first failure.
	InitialDelay time.Duration

	// MaxDelay caps every pause, jitter included.
	MaxDelay time.Duration

	// Multiplier grows the pause after each further failure.
	Multiplier float64

	// JitterFactor widens each pause by a random share of itself.
	// 0.1 stretches a pause by up to 10%.
	JitterFactor float64

	// RetryIf decides whether an error is worth another attempt.
	// A nil predicate retries everything.
	RetryIf func(error) bool
}

// DefaultConfig suits interactive work: three quick attempts.
var DefaultConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
}

// FileSourceConfig is tuned for offer dump reads, which can afford
// longer pauses than a request handler.
var FileSourceConfig = Config{
	MaxAttempts:  4,
	InitialDelay: 250 * time.Millisecond,
	MaxDelay:     3 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// WithRetryIf returns a copy of the config using the given predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// backoff returns the pause that follows the given failed attempt,
// attempt one being the first call of fn.
func (c Config) backoff(attempt int) time.Duration {
	pause := float64(c.InitialDelay)
	for i := 1; i < attempt; i++ {
		pause *= c.Multiplier
	}
	pause += rand.Float64() * pause * c.JitterFactor
	if capped := float64(c.MaxDelay); pause > capped {
		pause = capped
	}
	return time.Duration(pause)
}

// Do calls fn until it succeeds, the schedule is exhausted, or the
// context ends. It returns nil on success and the last error otherwise.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult is Do for functions that produce a value. When every
// attempt fails it returns the final attempt's value alongside its
// error.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if attempt == attempts || !retryable(err, cfg) {
			return result, err
		}

		if err := sleep(ctx, cfg.backoff(attempt)); err != nil {
			return result, err
		}
	}
}

func retryable(err error, cfg Config) bool {
	return cfg.RetryIf == nil || cfg.RetryIf(err)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Permanent marks an error no retry can fix, such as a malformed offer
// dump that will parse no better on a second read.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent marks err as permanent. A nil err stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err carries the permanent marker.
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that gives up on permanent
// errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}

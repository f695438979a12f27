package retry

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxAttempts  = 3
	DefaultInitialDelay = 100 * time.Millisecond
	DefaultMultiplier   = 2.0
)

// Policy is a bounded exponential backoff. MaxAttempts counts every call of
// the operation, the first one included.
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Multiplier   float64
	// MaxDelay caps a single wait. Zero means no cap.
	MaxDelay time.Duration
	// AttemptTimeout bounds each call of the operation. An attempt that runs
	// out of time fails with context.DeadlineExceeded and is retried like any
	// other transient error. Zero leaves attempts bounded by ctx only.
	AttemptTimeout time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:  DefaultMaxAttempts,
		InitialDelay: DefaultInitialDelay,
		Multiplier:   DefaultMultiplier,
	}
}

func (p Policy) normalized() Policy {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = DefaultInitialDelay
	}
	if p.Multiplier < 1 {
		p.Multiplier = DefaultMultiplier
	}
	return p
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.InitialDelay
	eb.Multiplier = p.Multiplier
	eb.RandomizationFactor = 0
	eb.MaxElapsedTime = 0
	if p.MaxDelay > 0 {
		eb.MaxInterval = p.MaxDelay
	} else {
		eb.MaxInterval = time.Duration(math.MaxInt64)
	}
	eb.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(eb, uint64(p.MaxAttempts-1)), ctx)
}

func (p Policy) run(ctx context.Context, op Operation, attempt int) error {
	if p.AttemptTimeout <= 0 {
		return op(ctx, attempt)
	}
	actx, cancel := context.WithTimeout(ctx, p.AttemptTimeout)
	defer cancel()
	return op(actx, attempt)
}

// Operation is one attempt. attempt starts at 1.
type Operation func(ctx context.Context, attempt int) error

// Notify is called before waiting for the next attempt.
type Notify func(attempt int, err error, wait time.Duration)

// Outcome describes how Do finished.
type Outcome struct {
	Attempts int
	// Exhausted is true when the last error was retryable but no attempts
	// (or context) were left.
	Exhausted bool
}

// Do runs op until it succeeds, returns an error rejected by retryable, or
// the policy runs out of attempts. The last error is returned unchanged.
func Do(ctx context.Context, p Policy, retryable func(error) bool, op Operation, notify Notify) (Outcome, error) {
	p = p.normalized()

	var out Outcome
	attempt := 0
	err := backoff.RetryNotify(func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		attempt++
		out.Attempts = attempt
		err := p.run(ctx, op, attempt)
		if err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, p.backOff(ctx), func(err error, wait time.Duration) {
		if notify != nil {
			notify(attempt, err, wait)
		}
	})
	if err != nil && (retryable == nil || retryable(err)) && !errors.Is(err, context.Canceled) {
		out.Exhausted = true
	}
	return out, err
}

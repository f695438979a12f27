package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")
var errFatal = errors.New("fatal")

func fastPolicy(attempts int) Policy {
	return Policy{MaxAttempts: attempts, InitialDelay: time.Millisecond, Multiplier: 2}
}

func notFatal(err error) bool { return !errors.Is(err, errFatal) }

func TestDo_SucceedsOnThirdAttempt(t *testing.T) {
	calls := 0
	out, err := Do(context.Background(), fastPolicy(3), notFatal, func(_ context.Context, attempt int) error {
		calls++
		if attempt < 3 {
			return errTransient
		}
		return nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, out.Attempts)
	assert.False(t, out.Exhausted)
}

func TestDo_NonRetryableStopsImmediately(t *testing.T) {
	calls := 0
	out, err := Do(context.Background(), fastPolicy(3), notFatal, func(context.Context, int) error {
		calls++
		return errFatal
	}, nil)

	require.ErrorIs(t, err, errFatal)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, out.Attempts)
	assert.False(t, out.Exhausted)
}

func TestDo_ExhaustsBudgetAndReturnsLastError(t *testing.T) {
	var notified []int
	out, err := Do(context.Background(), fastPolicy(3), notFatal, func(_ context.Context, attempt int) error {
		if attempt == 3 {
			return errors.Join(errTransient, errors.New("last"))
		}
		return errTransient
	}, func(attempt int, _ error, _ time.Duration) {
		notified = append(notified, attempt)
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "last")
	assert.Equal(t, 3, out.Attempts)
	assert.True(t, out.Exhausted)
	assert.Equal(t, []int{1, 2}, notified)
}

func TestDo_DelaysGrowExponentially(t *testing.T) {
	var waits []time.Duration
	_, _ = Do(context.Background(), Policy{MaxAttempts: 4, InitialDelay: time.Millisecond, Multiplier: 2}, nil,
		func(context.Context, int) error { return errTransient },
		func(_ int, _ error, wait time.Duration) { waits = append(waits, wait) })

	require.Len(t, waits, 3)
	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond}, waits)
}

func TestDo_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	out, err := Do(ctx, fastPolicy(3), nil, func(context.Context, int) error {
		calls++
		return nil
	}, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
	assert.False(t, out.Exhausted)
}

func TestDo_AttemptTimeoutIsRetried(t *testing.T) {
	p := fastPolicy(3)
	p.AttemptTimeout = 10 * time.Millisecond

	start := time.Now()
	out, err := Do(context.Background(), p, nil, func(ctx context.Context, _ int) error {
		<-ctx.Done()
		return ctx.Err()
	}, nil)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 3, out.Attempts)
	assert.True(t, out.Exhausted)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDo_AttemptTimeoutLeavesFastCallsAlone(t *testing.T) {
	p := fastPolicy(3)
	p.AttemptTimeout = time.Second

	out, err := Do(context.Background(), p, nil, func(ctx context.Context, _ int) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, out.Attempts)
}

func TestPolicy_Normalized(t *testing.T) {
	p := Policy{}.normalized()
	assert.Equal(t, 1, p.MaxAttempts)
	assert.Equal(t, DefaultInitialDelay, p.InitialDelay)
	assert.Equal(t, DefaultMultiplier, p.Multiplier)

	d := DefaultPolicy()
	assert.Equal(t, 3, d.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, d.InitialDelay)
}

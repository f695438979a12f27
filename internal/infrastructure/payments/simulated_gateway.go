package payments

import (
	"context"
	"errors"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"
	"payment_service/internal/infrastructure/metrics"
	"payment_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultTimeout = 10 * time.Second
	DefaultLatency = 100 * time.Millisecond
)

var (
	ErrGatewayRejected = errors.New("payment gateway rejected the submission")
	ErrGatewayTimeout  = errors.New("payment gateway timed out")
)

// SimulatedGateway stands in for an external payment processor. Every call
// runs on its own goroutine bounded by the configured timeout; a call that
// exceeds it fails with a retryable processing error.
type SimulatedGateway struct {
	decider Decider
	timeout time.Duration
	latency time.Duration
	// stall is how long OutcomeStall blocks. Defaults to twice the timeout.
	stall   time.Duration
	now     func() time.Time
	metrics interfaces.IPaymentMetrics
	log     *zap.Logger
}

var _ interfaces.IPaymentGateway = (*SimulatedGateway)(nil)

type Option func(*SimulatedGateway)

func WithDecider(d Decider) Option {
	return func(g *SimulatedGateway) { g.decider = d }
}

func WithTimeout(d time.Duration) Option {
	return func(g *SimulatedGateway) { g.timeout = d }
}

func WithLatency(d time.Duration) Option {
	return func(g *SimulatedGateway) { g.latency = d }
}

func WithStall(d time.Duration) Option {
	return func(g *SimulatedGateway) { g.stall = d }
}

func WithClock(now func() time.Time) Option {
	return func(g *SimulatedGateway) { g.now = now }
}

func WithMetrics(m interfaces.IPaymentMetrics) Option {
	return func(g *SimulatedGateway) { g.metrics = m }
}

func NewSimulatedGateway(log *zap.Logger, opts ...Option) *SimulatedGateway {
	g := &SimulatedGateway{
		decider: RandomDecider{},
		timeout: DefaultTimeout,
		latency: DefaultLatency,
		now:     time.Now,
		log:     log,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	if g.timeout <= 0 {
		g.timeout = DefaultTimeout
	}
	if g.stall <= 0 {
		g.stall = 2 * g.timeout
	}
	g.metrics = metrics.OrNop(g.metrics)
	g.log.Info("[payment][gateway] simulated gateway initialized",
		zap.Duration("timeout", g.timeout), zap.Duration("latency", g.latency))
	return g
}

// ProcessPayment validates p and asks the decider for the outcome.
func (g *SimulatedGateway) ProcessPayment(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
	env := p.Envelope()
	log := g.log.With(zap.String("payment_id", env.ID.String()), zap.String("payment_type", string(p.Type())))

	if err := entities.Validate(p, g.now()); err != nil {
		log.Warn("[payment][gateway] validation failed", zap.Error(err))
		return nil, err
	}

	log.Info("[payment][gateway] process start")
	return g.call(ctx, "process", log, func(ctx context.Context) (entities.PaymentMethod, error) {
		if err := sleep(ctx, g.latency); err != nil {
			return nil, err
		}
		switch outcome := g.decider.Decide(); outcome {
		case OutcomeAccept:
			return p.WithStatus(entities.PaymentStatusProcessing, g.now()), nil
		case OutcomeReject:
			return nil, failure.Processing("payment processing failed", ErrGatewayRejected)
		case OutcomeStall:
			if err := sleep(ctx, g.stall); err != nil {
				return nil, err
			}
			return p.WithStatus(entities.PaymentStatusFailed, g.now()), nil
		default:
			return nil, failure.Processing("unknown gateway outcome "+outcome.String(), nil)
		}
	})
}

func (g *SimulatedGateway) CancelPayment(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
	return g.settle(ctx, "cancel", p, entities.PaymentStatusCancelled)
}

func (g *SimulatedGateway) RefundPayment(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
	return g.settle(ctx, "refund", p, entities.PaymentStatusRefunded)
}

func (g *SimulatedGateway) settle(ctx context.Context, op string, p entities.PaymentMethod, status entities.PaymentStatus) (entities.PaymentMethod, error) {
	log := g.log.With(zap.String("payment_id", p.Envelope().ID.String()), zap.String("target_status", string(status)))
	log.Info("[payment][gateway] " + op + " start")
	return g.call(ctx, op, log, func(ctx context.Context) (entities.PaymentMethod, error) {
		if err := sleep(ctx, g.latency); err != nil {
			return nil, err
		}
		return p.WithStatus(status, g.now()), nil
	})
}

type callResult struct {
	payment entities.PaymentMethod
	err     error
}

func (g *SimulatedGateway) call(ctx context.Context, op string, log *zap.Logger, fn func(context.Context) (entities.PaymentMethod, error)) (entities.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	done := make(chan callResult, 1)
	go func() {
		p, err := fn(ctx)
		done <- callResult{payment: p, err: err}
	}()

	var res callResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res.err = ctx.Err()
	}
	elapsed := time.Since(started)

	if res.err != nil {
		outcome := "error"
		if errors.Is(res.err, context.DeadlineExceeded) {
			outcome = "timeout"
			res.err = failure.Processing("payment gateway call exceeded "+g.timeout.String(), errors.Join(ErrGatewayTimeout, res.err))
		} else if errors.Is(res.err, context.Canceled) {
			res.err = failure.Processing("payment gateway call cancelled", res.err)
		}
		g.metrics.ObserveGatewayCall(op, outcome, elapsed)
		log.Warn("[payment][gateway] "+op+" failed", zap.Duration("elapsed", elapsed), zap.Error(res.err))
		return nil, res.err
	}

	g.metrics.ObserveGatewayCall(op, string(res.payment.Envelope().Status), elapsed)
	log.Info("[payment][gateway] "+op+" success",
		zap.String("status", string(res.payment.Envelope().Status)), zap.Duration("elapsed", elapsed))
	return res.payment, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

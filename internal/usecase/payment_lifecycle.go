package usecase

import (
	"context"
	"strings"
	"time"

	"payment_service/internal/domain/failure"
	"payment_service/internal/infrastructure/metrics"
	"payment_service/internal/infrastructure/retry"
	"payment_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LifecycleDeps are the collaborators shared by the process, cancel and
// refund use cases.
type LifecycleDeps struct {
	Repo    interfaces.IPaymentRepository
	Gateway interfaces.IPaymentGateway
	Events  interfaces.IPaymentEventPublisher
	Cache   interfaces.IPaymentCache
	Metrics interfaces.IPaymentMetrics
	Retry   retry.Policy
	Logger  *zap.Logger
	Clock   func() time.Time
}

func (d LifecycleDeps) withDefaults() LifecycleDeps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Retry.MaxAttempts == 0 {
		d.Retry = retry.DefaultPolicy()
	}
	d.Metrics = metrics.OrNop(d.Metrics)
	return d
}

func parsePaymentID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, failure.Validationf("invalid payment id %q", raw)
	}
	return id, nil
}

// asProcessing tags untagged infrastructure errors so callers see a
// processing failure. Already tagged errors keep their kind.
func asProcessing(msg string, err error) error {
	if err == nil || failure.KindOf(err) != failure.KindInternal {
		return err
	}
	return failure.Processing(msg, err)
}

// lifecycleError shapes the error returned once a retry loop gives up.
func lifecycleError(op, paymentID string, out retry.Outcome, err error) error {
	if out.Exhausted {
		return failure.Exhausted(op, paymentID, out.Attempts, err)
	}
	return asProcessing(op+" failed", err)
}

// detached lets a stage that already started finish even if the caller
// goes away.
func detached(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

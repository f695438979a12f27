package usecase

import (
	"context"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"
	"payment_service/internal/infrastructure/retry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reversal describes one of the two ways a payment leaves PROCESSING or
// COMPLETED: cancel and refund. They only differ in the target status and
// the collaborators they call.
type reversal struct {
	op      string
	logTag  string
	target  entities.PaymentStatus
	find    func(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error)
	execute func(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error)
}

// reverse runs find → validate → gateway → save under the retry policy and
// then publishes and caches the result on a best-effort basis.
func reverse(ctx context.Context, deps LifecycleDeps, rawID string, r reversal) (entities.PaymentMethod, error) {
	log := deps.Logger.With(zap.String("payment_id", rawID))
	log.Info("[payment][usecase] " + r.logTag + " start")

	id, err := parsePaymentID(rawID)
	if err != nil {
		deps.Metrics.ObserveFailure(r.op, failure.KindValidation)
		return nil, err
	}

	var result entities.PaymentMethod
	out, err := retry.Do(ctx, deps.Retry, failure.IsRetryable, func(ctx context.Context, _ int) error {
		current, err := loadReversible(ctx, deps, id, r)
		if err != nil {
			return err
		}
		updated, err := r.execute(ctx, current)
		if err != nil {
			return asProcessing("gateway", err)
		}
		saved, err := deps.Repo.Save(detached(ctx), updated)
		if err != nil {
			return asProcessing("save payment", err)
		}
		result = saved
		return nil
	}, func(attempt int, err error, wait time.Duration) {
		log.Warn("[payment][usecase] "+r.logTag+" retry", zap.Int("attempt", attempt), zap.Duration("wait", wait), zap.Error(err))
	})
	if err != nil {
		err = lifecycleError(r.op, id.String(), out, err)
		log.Warn("[payment][usecase] "+r.logTag+" failed", zap.Int("attempts", out.Attempts), zap.Error(err))
		deps.Metrics.ObserveFailure(r.op, failure.KindOf(err))
		return nil, err
	}

	sideCtx := detached(ctx)
	if err := deps.Events.Publish(sideCtx, result); err != nil {
		log.Warn("[payment][usecase] "+r.logTag+" event publish failed", zap.Error(err))
	}
	deps.Cache.CachePayment(sideCtx, result)

	deps.Metrics.ObservePayment(r.op, result.Type(), result.Envelope().Status)
	log.Info("[payment][usecase] "+r.logTag+" success", zap.String("status", string(result.Envelope().Status)))
	return result, nil
}

// loadReversible returns the eligible record, or explains why there is
// none: a record in a terminal state is a validation error, a missing one
// is not found.
func loadReversible(ctx context.Context, deps LifecycleDeps, id uuid.UUID, r reversal) (entities.PaymentMethod, error) {
	current, err := r.find(ctx, id)
	if err != nil {
		return nil, asProcessing("load payment", err)
	}
	if current == nil {
		existing, err := deps.Repo.FindByID(ctx, id)
		if err != nil {
			return nil, asProcessing("load payment", err)
		}
		if existing == nil {
			return nil, failure.NotFound("payment not found: " + id.String())
		}
		current = existing
	}
	if err := validateReversible(current.Envelope().Status, r.target); err != nil {
		return nil, err
	}
	return current, nil
}

func validateReversible(current, target entities.PaymentStatus) error {
	switch current {
	case entities.PaymentStatusProcessing, entities.PaymentStatusCompleted:
		return nil
	case entities.PaymentStatusCancelled:
		return failure.Validation("payment already cancelled")
	case entities.PaymentStatusRefunded:
		return failure.Validation("payment already refunded")
	}
	return failure.Validationf("invalid payment status %s for %s", current, target)
}

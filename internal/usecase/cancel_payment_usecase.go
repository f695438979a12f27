package usecase

import (
	"context"

	"payment_service/internal/domain/entities"
)

const opCancel = "cancel payment"

type ICancelPaymentUseCase interface {
	Execute(ctx context.Context, paymentID string) (entities.PaymentMethod, error)
}

type CancelPaymentUseCase struct {
	deps LifecycleDeps
}

var _ ICancelPaymentUseCase = (*CancelPaymentUseCase)(nil)

func NewCancelPaymentUseCase(deps LifecycleDeps) *CancelPaymentUseCase {
	return &CancelPaymentUseCase{deps: deps.withDefaults()}
}

// Execute moves a PROCESSING or COMPLETED payment to CANCELLED and persists
// it.
func (u *CancelPaymentUseCase) Execute(ctx context.Context, paymentID string) (entities.PaymentMethod, error) {
	return reverse(ctx, u.deps, paymentID, reversal{
		op:      opCancel,
		logTag:  "cancel",
		target:  entities.PaymentStatusCancelled,
		find:    u.deps.Repo.FindEligibleForCancel,
		execute: u.deps.Gateway.CancelPayment,
	})
}

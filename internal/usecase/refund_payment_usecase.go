package usecase

import (
	"context"

	"payment_service/internal/domain/entities"
)

const opRefund = "refund payment"

type IRefundPaymentUseCase interface {
	Execute(ctx context.Context, paymentID string) (entities.PaymentMethod, error)
}

type RefundPaymentUseCase struct {
	deps LifecycleDeps
}

var _ IRefundPaymentUseCase = (*RefundPaymentUseCase)(nil)

func NewRefundPaymentUseCase(deps LifecycleDeps) *RefundPaymentUseCase {
	return &RefundPaymentUseCase{deps: deps.withDefaults()}
}

func (u *RefundPaymentUseCase) Execute(ctx context.Context, paymentID string) (entities.PaymentMethod, error) {
	return reverse(ctx, u.deps, paymentID, reversal{
		op:      opRefund,
		logTag:  "refund",
		target:  entities.PaymentStatusRefunded,
		find:    u.deps.Repo.FindEligibleForRefund,
		execute: u.deps.Gateway.RefundPayment,
	})
}

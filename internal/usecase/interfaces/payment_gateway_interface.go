package interfaces

import (
	"context"

	"payment_service/internal/domain/entities"
)

// IPaymentGateway is the only component allowed to decide the status of a
// payment after submission. Every method returns a new copy of the payment.
type IPaymentGateway interface {
	ProcessPayment(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error)
	CancelPayment(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error)
	RefundPayment(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error)
}

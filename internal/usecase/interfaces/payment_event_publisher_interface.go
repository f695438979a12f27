package interfaces

import (
	"context"

	"payment_service/internal/domain/entities"
)

// IPaymentEventPublisher publishes a lifecycle event for the current status
// of p.
type IPaymentEventPublisher interface {
	Publish(ctx context.Context, p entities.PaymentMethod) error
}

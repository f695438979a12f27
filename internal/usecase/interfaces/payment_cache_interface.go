package interfaces

import (
	"context"

	"payment_service/internal/domain/entities"

	"github.com/google/uuid"
)

// IPaymentCache is best-effort: failures are reported as false/miss, never
// as errors.
type IPaymentCache interface {
	CachePayment(ctx context.Context, p entities.PaymentMethod) bool
	GetCachedPayment(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, bool)
}

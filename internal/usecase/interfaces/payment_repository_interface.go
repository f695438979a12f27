package interfaces

import (
	"context"

	"payment_service/internal/domain/entities"

	"github.com/google/uuid"
)

// IPaymentRepository abstracts persistence for PaymentMethod records.
//
// Finders return (nil, nil) when no record matches. The eligible finders only
// return records in PROCESSING or COMPLETED.
type IPaymentRepository interface {
	Save(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error)
	FindEligibleForCancel(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error)
	FindEligibleForRefund(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error)
	FindByID(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error)
	FindByOrderID(ctx context.Context, orderID string) ([]entities.PaymentMethod, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entities.PaymentMethod, error)
	CountAll(ctx context.Context) (int64, error)
	FindPage(ctx context.Context, size, offset int) ([]entities.PaymentMethod, error)
}

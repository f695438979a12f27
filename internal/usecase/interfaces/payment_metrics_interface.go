package interfaces

import (
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"
)

type IPaymentMetrics interface {
	ObservePayment(op string, paymentType entities.PaymentType, status entities.PaymentStatus)
	ObserveFailure(op string, kind failure.Kind)
	ObserveGatewayCall(op, outcome string, elapsed time.Duration)
	ObservePublishFailure(topic string)
	ObserveCacheFailure(op string)
}

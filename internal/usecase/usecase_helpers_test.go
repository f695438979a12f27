package usecase

import (
	"context"
	"testing"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/infrastructure/retry"
	mock_interfaces "payment_service/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

var testNow = time.Date(2026, 7, 15, 14, 0, 0, 0, time.UTC)

type lifecycleMocks struct {
	repo    *mock_interfaces.MockIPaymentRepository
	gateway *mock_interfaces.MockIPaymentGateway
	events  *mock_interfaces.MockIPaymentEventPublisher
	cache   *mock_interfaces.MockIPaymentCache
}

func newLifecycleMocks(t *testing.T) (*lifecycleMocks, LifecycleDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &lifecycleMocks{
		repo:    mock_interfaces.NewMockIPaymentRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
		events:  mock_interfaces.NewMockIPaymentEventPublisher(ctrl),
		cache:   mock_interfaces.NewMockIPaymentCache(ctrl),
	}
	return m, LifecycleDeps{
		Repo:    m.repo,
		Gateway: m.gateway,
		Events:  m.events,
		Cache:   m.cache,
		Retry:   retry.Policy{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2},
		Logger:  zaptest.NewLogger(t),
		Clock:   func() time.Time { return testNow },
	}
}

func pixInput() ProcessPaymentInput {
	return ProcessPaymentInput{
		PaymentType: entities.PaymentTypePix,
		Amount:      decimal.RequireFromString("50.00"),
		CustomerID:  uuid.New(),
		OrderID:     "order-100",
		PixKey:      "cliente@example.com",
		PixKeyType:  entities.PixKeyTypeEmail,
	}
}

func storedPix(status entities.PaymentStatus) entities.PixPayment {
	env := entities.NewEnvelope(decimal.RequireFromString("50.00"), uuid.New(), "order-200", testNow.Add(-time.Hour))
	env.Status = status
	return entities.PixPayment{PaymentEnvelope: env, PixKey: "k", PixKeyType: entities.PixKeyTypeCPF}
}

func saveReturnsInput(_ context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
	return p, nil
}

func withStatus(status entities.PaymentStatus) func(context.Context, entities.PaymentMethod) (entities.PaymentMethod, error) {
	return func(_ context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
		return p.WithStatus(status, testNow), nil
	}
}

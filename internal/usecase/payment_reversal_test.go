package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestCancelPaymentUseCase_Execute(t *testing.T) {
	t.Run("processing payment is cancelled and saved", func(t *testing.T) {
		m, deps := newLifecycleMocks(t)
		uc := NewCancelPaymentUseCase(deps)
		stored := storedPix(entities.PaymentStatusProcessing)

		m.repo.EXPECT().FindEligibleForCancel(gomock.Any(), stored.ID).Return(stored, nil)
		m.gateway.EXPECT().CancelPayment(gomock.Any(), stored).DoAndReturn(withStatus(entities.PaymentStatusCancelled))
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
				if p.Envelope().Status != entities.PaymentStatusCancelled {
					t.Fatalf("expected CANCELLED to be saved, got %s", p.Envelope().Status)
				}
				return p, nil
			})
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().CachePayment(gomock.Any(), gomock.Any()).Return(true)

		got, err := uc.Execute(context.Background(), stored.ID.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Envelope().Status != entities.PaymentStatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", got.Envelope().Status)
		}
	})

	t.Run("already cancelled", func(t *testing.T) {
		m, deps := newLifecycleMocks(t)
		uc := NewCancelPaymentUseCase(deps)
		stored := storedPix(entities.PaymentStatusCancelled)

		m.repo.EXPECT().FindEligibleForCancel(gomock.Any(), stored.ID).Return(nil, nil)
		m.repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)

		_, err := uc.Execute(context.Background(), stored.ID.String())
		assertValidationMessage(t, err, "payment already cancelled")
	})

	t.Run("already refunded", func(t *testing.T) {
		m, deps := newLifecycleMocks(t)
		uc := NewCancelPaymentUseCase(deps)
		stored := storedPix(entities.PaymentStatusRefunded)

		m.repo.EXPECT().FindEligibleForCancel(gomock.Any(), stored.ID).Return(nil, nil)
		m.repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)

		_, err := uc.Execute(context.Background(), stored.ID.String())
		assertValidationMessage(t, err, "payment already refunded")
	})

	t.Run("pending payment has an invalid status", func(t *testing.T) {
		m, deps := newLifecycleMocks(t)
		uc := NewCancelPaymentUseCase(deps)
		stored := storedPix(entities.PaymentStatusPending)

		m.repo.EXPECT().FindEligibleForCancel(gomock.Any(), stored.ID).Return(nil, nil)
		m.repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)

		_, err := uc.Execute(context.Background(), stored.ID.String())
		if failure.KindOf(err) != failure.KindValidation || !strings.Contains(err.Error(), "invalid payment status") {
			t.Fatalf("expected invalid status error, got %v", err)
		}
	})

	t.Run("missing payment is not found and not retried", func(t *testing.T) {
		m, deps := newLifecycleMocks(t)
		uc := NewCancelPaymentUseCase(deps)
		id := uuid.New()

		m.repo.EXPECT().FindEligibleForCancel(gomock.Any(), id).Return(nil, nil).Times(1)
		m.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil).Times(1)

		_, err := uc.Execute(context.Background(), id.String())
		if !errors.Is(err, failure.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		_, deps := newLifecycleMocks(t)
		uc := NewCancelPaymentUseCase(deps)

		_, err := uc.Execute(context.Background(), "not-a-uuid")
		if !errors.Is(err, failure.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("gateway failure exhausts retries", func(t *testing.T) {
		m, deps := newLifecycleMocks(t)
		uc := NewCancelPaymentUseCase(deps)
		stored := storedPix(entities.PaymentStatusCompleted)
		cause := errors.New("gateway timeout")

		m.repo.EXPECT().FindEligibleForCancel(gomock.Any(), stored.ID).Return(stored, nil).Times(3)
		m.gateway.EXPECT().CancelPayment(gomock.Any(), gomock.Any()).Return(nil, cause).Times(3)

		_, err := uc.Execute(context.Background(), stored.ID.String())
		if failure.KindOf(err) != failure.KindProcessing || !errors.Is(err, cause) {
			t.Fatalf("expected processing error wrapping cause, got %v", err)
		}
		for _, part := range []string{stored.ID.String(), "attempts=3"} {
			if !strings.Contains(err.Error(), part) {
				t.Fatalf("expected %q in %q", part, err.Error())
			}
		}
	})
}

func TestRefundPaymentUseCase_Execute(t *testing.T) {
	t.Run("completed payment is refunded", func(t *testing.T) {
		m, deps := newLifecycleMocks(t)
		uc := NewRefundPaymentUseCase(deps)
		stored := storedPix(entities.PaymentStatusCompleted)

		m.repo.EXPECT().FindEligibleForRefund(gomock.Any(), stored.ID).Return(stored, nil)
		m.gateway.EXPECT().RefundPayment(gomock.Any(), stored).DoAndReturn(withStatus(entities.PaymentStatusRefunded))
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveReturnsInput)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		m.cache.EXPECT().CachePayment(gomock.Any(), gomock.Any()).Return(false)

		got, err := uc.Execute(context.Background(), stored.ID.String())
		if err != nil {
			t.Fatalf("publish and cache failures must not fail a refund: %v", err)
		}
		if got.Envelope().Status != entities.PaymentStatusRefunded {
			t.Fatalf("expected REFUNDED, got %s", got.Envelope().Status)
		}
	})

	t.Run("transient save failure is retried", func(t *testing.T) {
		m, deps := newLifecycleMocks(t)
		uc := NewRefundPaymentUseCase(deps)
		stored := storedPix(entities.PaymentStatusProcessing)

		m.repo.EXPECT().FindEligibleForRefund(gomock.Any(), stored.ID).Return(stored, nil).Times(2)
		m.gateway.EXPECT().RefundPayment(gomock.Any(), gomock.Any()).DoAndReturn(withStatus(entities.PaymentStatusRefunded)).Times(2)
		gomock.InOrder(
			m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled")),
			m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveReturnsInput),
		)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().CachePayment(gomock.Any(), gomock.Any()).Return(true)

		if _, err := uc.Execute(context.Background(), stored.ID.String()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already refunded", func(t *testing.T) {
		m, deps := newLifecycleMocks(t)
		uc := NewRefundPaymentUseCase(deps)
		stored := storedPix(entities.PaymentStatusRefunded)

		m.repo.EXPECT().FindEligibleForRefund(gomock.Any(), stored.ID).Return(nil, nil)
		m.repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)

		_, err := uc.Execute(context.Background(), stored.ID.String())
		assertValidationMessage(t, err, "payment already refunded")
	})

	t.Run("repository error is surfaced as processing", func(t *testing.T) {
		m, deps := newLifecycleMocks(t)
		deps.Retry.MaxAttempts = 1
		uc := NewRefundPaymentUseCase(deps)
		id := uuid.New()

		m.repo.EXPECT().FindEligibleForRefund(gomock.Any(), id).Return(nil, errors.New("connection refused"))

		_, err := uc.Execute(context.Background(), id.String())
		if !errors.Is(err, failure.ErrProcessing) {
			t.Fatalf("expected processing error, got %v", err)
		}
	})
}

func TestValidateReversible(t *testing.T) {
	for _, s := range entities.AllPaymentStatuses {
		err := validateReversible(s, entities.PaymentStatusCancelled)
		if s.IsReversible() != (err == nil) {
			t.Errorf("%s: reversible=%v but err=%v", s, s.IsReversible(), err)
		}
	}
}

func assertValidationMessage(t *testing.T, err error, msg string) {
	t.Helper()
	var fe *failure.Error
	if !errors.As(err, &fe) || fe.Kind != failure.KindValidation || fe.Message != msg {
		t.Fatalf("expected validation %q, got %v", msg, err)
	}
}

package usecase

import (
	"context"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"
	"payment_service/internal/infrastructure/retry"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const opProcess = "process payment"

// ProcessPaymentInput is one of the four request shapes, selected by
// PaymentType. Fields of the other shapes are ignored.
type ProcessPaymentInput struct {
	PaymentType entities.PaymentType
	Amount      decimal.Decimal
	CustomerID  uuid.UUID
	OrderID     string

	CardNumber     string
	CardHolderName string
	CVV            string

	BoletoNumber string
	Beneficiario string
	Pagador      string
	DueDate      time.Time

	PixKey     string
	PixKeyType entities.PixKeyType
}

// ProcessResult carries the payment plus the non-fatal problems met after
// it was persisted.
type ProcessResult struct {
	Payment  entities.PaymentMethod
	Warnings []string
}

type IProcessPaymentUseCase interface {
	Execute(ctx context.Context, in ProcessPaymentInput) (ProcessResult, error)
}

type ProcessPaymentUseCase struct {
	deps LifecycleDeps
}

var _ IProcessPaymentUseCase = (*ProcessPaymentUseCase)(nil)

func NewProcessPaymentUseCase(deps LifecycleDeps) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{deps: deps.withDefaults()}
}

// Execute runs convert → validate → gateway → save → publish → cache. Only
// the gateway and save stages are retried; publish and cache failures never
// fail the call.
func (u *ProcessPaymentUseCase) Execute(ctx context.Context, in ProcessPaymentInput) (ProcessResult, error) {
	now := u.deps.Clock()
	payment, err := in.toPayment(now)
	if err != nil {
		u.deps.Metrics.ObserveFailure(opProcess, failure.KindOf(err))
		return ProcessResult{}, err
	}

	id := payment.Envelope().ID.String()
	log := u.deps.Logger.With(zap.String("payment_id", id), zap.String("payment_type", string(payment.Type())))
	log.Info("[payment][usecase] process start", zap.String("order_id", in.OrderID))

	if err := entities.Validate(payment, now); err != nil {
		log.Warn("[payment][usecase] process validation failed", zap.Error(err))
		u.deps.Metrics.ObserveFailure(opProcess, failure.KindValidation)
		return ProcessResult{}, err
	}

	var processed, saved entities.PaymentMethod
	out, err := retry.Do(ctx, u.deps.Retry, failure.IsRetryable, func(ctx context.Context, _ int) error {
		if processed == nil {
			p, err := u.deps.Gateway.ProcessPayment(ctx, payment)
			if err != nil {
				return asProcessing("gateway", err)
			}
			processed = p
		}
		s, err := u.deps.Repo.Save(detached(ctx), processed)
		if err != nil {
			return asProcessing("save payment", err)
		}
		saved = s
		return nil
	}, func(attempt int, err error, wait time.Duration) {
		log.Warn("[payment][usecase] process retry", zap.Int("attempt", attempt), zap.Duration("wait", wait), zap.Error(err))
	})
	if err != nil {
		err = lifecycleError(opProcess, id, out, err)
		log.Error("[payment][usecase] process failed", zap.Int("attempts", out.Attempts), zap.Error(err))
		u.deps.Metrics.ObserveFailure(opProcess, failure.KindOf(err))
		return ProcessResult{}, err
	}

	var warnings []string
	sideCtx := detached(ctx)
	if err := u.deps.Events.Publish(sideCtx, saved); err != nil {
		log.Warn("[payment][usecase] event publish failed", zap.Error(err))
		warnings = append(warnings, "event publish failed: "+err.Error())
	}
	if !u.deps.Cache.CachePayment(sideCtx, saved) {
		log.Warn("[payment][usecase] cache write skipped")
	}

	env := saved.Envelope()
	u.deps.Metrics.ObservePayment(opProcess, saved.Type(), env.Status)
	log.Info("[payment][usecase] process success", zap.String("persisted_status", string(env.Status)))

	return ProcessResult{
		Payment:  saved.WithStatus(entities.PaymentStatusProcessing, env.UpdatedAt),
		Warnings: warnings,
	}, nil
}

func (in ProcessPaymentInput) toPayment(now time.Time) (entities.PaymentMethod, error) {
	env := entities.NewEnvelope(in.Amount, in.CustomerID, in.OrderID, now)

	switch in.PaymentType {
	case entities.PaymentTypeCreditCard:
		return entities.CreditCardPayment{PaymentEnvelope: env, CardNumber: in.CardNumber, CardHolderName: in.CardHolderName, CVV: in.CVV}, nil
	case entities.PaymentTypeDebitCard:
		return entities.DebitCardPayment{PaymentEnvelope: env, CardNumber: in.CardNumber, CardHolderName: in.CardHolderName}, nil
	case entities.PaymentTypeBoleto:
		return entities.BoletoPayment{PaymentEnvelope: env, BoletoNumber: in.BoletoNumber, Beneficiario: in.Beneficiario, Pagador: in.Pagador, DueDate: in.DueDate}, nil
	case entities.PaymentTypePix:
		return entities.PixPayment{PaymentEnvelope: env, PixKey: in.PixKey, PixKeyType: in.PixKeyType}, nil
	}
	return nil, failure.Validationf("unsupported payment type %q", in.PaymentType)
}

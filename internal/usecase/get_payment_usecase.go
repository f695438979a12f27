package usecase

import (
	"context"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"
	"payment_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type IGetPaymentUseCase interface {
	Execute(ctx context.Context, paymentID string) (entities.PaymentMethod, error)
}

// GetPaymentUseCase reads through the cache: a hit is returned as is, a
// miss is loaded from the repository and written back.
type GetPaymentUseCase struct {
	repo  interfaces.IPaymentRepository
	cache interfaces.IPaymentCache
	log   *zap.Logger
}

var _ IGetPaymentUseCase = (*GetPaymentUseCase)(nil)

func NewGetPaymentUseCase(repo interfaces.IPaymentRepository, cache interfaces.IPaymentCache, log *zap.Logger) *GetPaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &GetPaymentUseCase{repo: repo, cache: cache, log: log}
}

func (u *GetPaymentUseCase) Execute(ctx context.Context, paymentID string) (entities.PaymentMethod, error) {
	id, err := parsePaymentID(paymentID)
	if err != nil {
		return nil, err
	}
	log := u.log.With(zap.String("payment_id", id.String()))

	if p, ok := u.cache.GetCachedPayment(ctx, id); ok {
		log.Debug("[payment][usecase] get cache hit")
		return p, nil
	}

	p, err := u.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("[payment][usecase] get failed", zap.Error(err))
		return nil, asProcessing("load payment", err)
	}
	if p == nil {
		return nil, failure.NotFound("payment not found: " + id.String())
	}

	u.cache.CachePayment(ctx, p)
	return p, nil
}

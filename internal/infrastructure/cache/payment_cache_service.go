package cache

import (
	"context"
	"errors"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/infrastructure/metrics"
	"payment_service/internal/infrastructure/retry"
	"payment_service/internal/infrastructure/serialization"
	"payment_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultTTL = time.Hour
	// DefaultCallTimeout bounds one store call when the policy sets no
	// AttemptTimeout.
	DefaultCallTimeout = time.Second
	keyPrefix          = "payment:"
)

// PaymentCacheService is a write-through cache in front of the repository.
// It never returns errors: a failed write is false and a failed read is a
// miss.
type PaymentCacheService struct {
	store   Store
	ttl     time.Duration
	policy  retry.Policy
	metrics interfaces.IPaymentMetrics
	log     *zap.Logger
}

var _ interfaces.IPaymentCache = (*PaymentCacheService)(nil)

func NewPaymentCacheService(store Store, ttl time.Duration, policy retry.Policy, m interfaces.IPaymentMetrics, log *zap.Logger) *PaymentCacheService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	if policy.AttemptTimeout <= 0 {
		policy.AttemptTimeout = DefaultCallTimeout
	}
	return &PaymentCacheService{store: store, ttl: ttl, policy: policy, metrics: metrics.OrNop(m), log: log}
}

func Key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (s *PaymentCacheService) CachePayment(ctx context.Context, p entities.PaymentMethod) bool {
	key := Key(p.Envelope().ID)
	log := s.log.With(zap.String("key", key))

	payload, err := serialization.Marshal(p)
	if err != nil {
		log.Error("[payment][cache] encode failed", zap.Error(err))
		s.metrics.ObserveCacheFailure("set")
		return false
	}

	out, err := retry.Do(ctx, s.policy, retryableStoreError, func(ctx context.Context, _ int) error {
		return s.store.Set(ctx, key, payload, s.ttl)
	}, nil)
	if err != nil {
		log.Warn("[payment][cache] set failed", zap.Int("attempts", out.Attempts), zap.Error(err))
		s.metrics.ObserveCacheFailure("set")
		return false
	}
	log.Debug("[payment][cache] set", zap.Duration("ttl", s.ttl))
	return true
}

func (s *PaymentCacheService) GetCachedPayment(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, bool) {
	key := Key(id)
	log := s.log.With(zap.String("key", key))

	var payload []byte
	out, err := retry.Do(ctx, s.policy, retryableStoreError, func(ctx context.Context, _ int) error {
		b, err := s.store.Get(ctx, key)
		payload = b
		return err
	}, nil)
	if errors.Is(err, ErrCacheMiss) {
		log.Debug("[payment][cache] miss")
		return nil, false
	}
	if err != nil {
		log.Warn("[payment][cache] get failed", zap.Int("attempts", out.Attempts), zap.Error(err))
		s.metrics.ObserveCacheFailure("get")
		return nil, false
	}

	p, err := serialization.Unmarshal(payload)
	if err != nil {
		log.Warn("[payment][cache] decode failed", zap.Error(err))
		s.metrics.ObserveCacheFailure("decode")
		return nil, false
	}
	log.Debug("[payment][cache] hit")
	return p, true
}

func retryableStoreError(err error) bool {
	return !errors.Is(err, ErrInvalidArgument) && !errors.Is(err, ErrCacheMiss)
}

package messaging

import (
	"context"
	"errors"
	"strings"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"
	"payment_service/internal/infrastructure/metrics"
	"payment_service/internal/infrastructure/retry"
	"payment_service/internal/infrastructure/serialization"
	"payment_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultBaseTopic = "payment"
	// DefaultSendTimeout bounds one send when the policy sets no
	// AttemptTimeout.
	DefaultSendTimeout = 5 * time.Second
)

// PaymentEventProducer publishes the redacted payment to a topic chosen by
// its status.
type PaymentEventProducer struct {
	sender    Sender
	baseTopic string
	policy    retry.Policy
	metrics   interfaces.IPaymentMetrics
	log       *zap.Logger
	now       func() time.Time
}

var _ interfaces.IPaymentEventPublisher = (*PaymentEventProducer)(nil)

func NewPaymentEventProducer(sender Sender, baseTopic string, policy retry.Policy, m interfaces.IPaymentMetrics, log *zap.Logger) *PaymentEventProducer {
	if baseTopic == "" {
		baseTopic = DefaultBaseTopic
	}
	if log == nil {
		log = zap.NewNop()
	}
	if policy.AttemptTimeout <= 0 {
		policy.AttemptTimeout = DefaultSendTimeout
	}
	return &PaymentEventProducer{
		sender:    sender,
		baseTopic: baseTopic,
		policy:    policy,
		metrics:   metrics.OrNop(m),
		log:       log,
		now:       time.Now,
	}
}

// TopicFor maps a status to "<base>-<status>".
func TopicFor(base string, status entities.PaymentStatus) string {
	switch status {
	case entities.PaymentStatusPending:
		return base + "-pending"
	case entities.PaymentStatusProcessing:
		return base + "-processing"
	case entities.PaymentStatusCompleted:
		return base + "-completed"
	case entities.PaymentStatusFailed:
		return base + "-failed"
	case entities.PaymentStatusCancelled:
		return base + "-cancelled"
	case entities.PaymentStatusRefunded:
		return base + "-refunded"
	}
	return base + "-" + strings.ToLower(string(status))
}

// KeyFor is "<id>-<customerId>-<orderId>". It does not depend on status.
func KeyFor(p entities.PaymentMethod) string {
	env := p.Envelope()
	return env.ID.String() + "-" + env.CustomerID.String() + "-" + env.OrderID
}

func (pr *PaymentEventProducer) Publish(ctx context.Context, p entities.PaymentMethod) error {
	env := p.Envelope()
	topic := TopicFor(pr.baseTopic, env.Status)
	log := pr.log.With(
		zap.String("payment_id", env.ID.String()),
		zap.String("status", string(env.Status)),
		zap.String("topic", topic),
	)

	payload, err := serialization.Marshal(p)
	if err != nil {
		log.Error("[payment][event] encode failed", zap.Error(err))
		pr.metrics.ObservePublishFailure(topic)
		return err
	}
	key := KeyFor(p)

	log.Info("[payment][event] publish start")
	rec := pr.newRecord(topic, key, payload, p)
	out, err := retry.Do(ctx, pr.policy, retryableSendError,
		func(ctx context.Context, _ int) error {
			return pr.sender.Send(ctx, rec)
		},
		func(attempt int, err error, wait time.Duration) {
			log.Warn("[payment][event] publish retry",
				zap.Int("attempt", attempt), zap.Duration("wait", wait), zap.Error(err))
		})

	if errors.Is(err, ErrRecordHeadersClosed) {
		log.Warn("[payment][event] headers closed, sending a fresh record")
		rec = pr.newRecord(topic, key, payload, p)
		err = pr.sendOnce(ctx, rec)
	}

	if err != nil {
		pr.metrics.ObservePublishFailure(topic)
		log.Error("[payment][event] publish failed", zap.Int("attempts", out.Attempts), zap.Error(err))
		if out.Exhausted {
			return failure.Exhausted("publish payment event", env.ID.String(), out.Attempts, err)
		}
		return failure.Processing("publish payment event", err)
	}

	log.Info("[payment][event] publish success", zap.Int("attempts", out.Attempts))
	return nil
}

func (pr *PaymentEventProducer) sendOnce(ctx context.Context, rec Record) error {
	sctx, cancel := context.WithTimeout(ctx, pr.policy.AttemptTimeout)
	defer cancel()
	return pr.sender.Send(sctx, rec)
}

func (pr *PaymentEventProducer) newRecord(topic, key string, payload []byte, p entities.PaymentMethod) Record {
	return Record{
		Topic: topic,
		Key:   key,
		Value: payload,
		Headers: []Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "payment_type", Value: []byte(p.Type())},
			{Key: "status", Value: []byte(p.Envelope().Status)},
			{Key: "produced_at", Value: []byte(pr.now().UTC().Format(time.RFC3339Nano))},
		},
	}
}

// Headers-closed is handled outside the generic loop; a retry there would
// resend the same spent record.
func retryableSendError(err error) bool {
	return !errors.Is(err, ErrInvalidArgument) && !errors.Is(err, ErrRecordHeadersClosed)
}

package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"
	"payment_service/internal/infrastructure/retry"
	"payment_service/internal/infrastructure/serialization"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeSender returns the scripted errors in order, then nil.
type fakeSender struct {
	mu      sync.Mutex
	errs    []error
	records []Record
}

func (f *fakeSender) Send(_ context.Context, r Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, r)
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

// stalledSender never answers; it returns only when ctx is done.
type stalledSender struct {
	mu    sync.Mutex
	sends int
}

func (s *stalledSender) Send(ctx context.Context, _ Record) error {
	s.mu.Lock()
	s.sends++
	s.mu.Unlock()
	<-ctx.Done()
	return ctx.Err()
}

func fastPolicy() retry.Policy {
	return retry.Policy{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}
}

func completedCard() entities.CreditCardPayment {
	env := entities.NewEnvelope(decimal.RequireFromString("99.90"), uuid.New(), "order-55", time.Now())
	env.Status = entities.PaymentStatusCompleted
	return entities.CreditCardPayment{PaymentEnvelope: env, CardNumber: "4111111111111234", CardHolderName: "Maria", CVV: "123"}
}

func headerValue(r Record, key string) string {
	for _, h := range r.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestTopicFor(t *testing.T) {
	cases := map[entities.PaymentStatus]string{
		entities.PaymentStatusPending:    "payment-pending",
		entities.PaymentStatusProcessing: "payment-processing",
		entities.PaymentStatusCompleted:  "payment-completed",
		entities.PaymentStatusFailed:     "payment-failed",
		entities.PaymentStatusCancelled:  "payment-cancelled",
		entities.PaymentStatusRefunded:   "payment-refunded",
	}
	for status, want := range cases {
		assert.Equal(t, want, TopicFor("payment", status))
	}
}

func TestKeyFor_IndependentOfStatus(t *testing.T) {
	p := completedCard()
	cancelled := p.WithStatus(entities.PaymentStatusCancelled, time.Now())

	assert.Equal(t, KeyFor(p), KeyFor(cancelled))
	assert.Equal(t, fmt.Sprintf("%s-%s-order-55", p.ID, p.CustomerID), KeyFor(p))
	assert.NotEqual(t, TopicFor("payment", p.Status), TopicFor("payment", cancelled.Envelope().Status))
}

func TestPublish_SendsRedactedPayloadToStatusTopic(t *testing.T) {
	sender := &fakeSender{}
	pr := NewPaymentEventProducer(sender, "payment", fastPolicy(), nil, zaptest.NewLogger(t))
	p := completedCard()

	require.NoError(t, pr.Publish(context.Background(), p))
	require.Len(t, sender.records, 1)

	rec := sender.records[0]
	assert.Equal(t, "payment-completed", rec.Topic)
	assert.Equal(t, KeyFor(p), rec.Key)
	assert.Equal(t, "CREDIT_CARD", headerValue(rec, "payment_type"))
	assert.NotContains(t, string(rec.Value), "4111111111111234")

	decoded, err := serialization.Unmarshal(rec.Value)
	require.NoError(t, err)
	assert.Equal(t, p.ID, decoded.Envelope().ID)
}

func TestPublish_RetriesTransientErrors(t *testing.T) {
	sender := &fakeSender{errs: []error{errors.New("broker down"), errors.New("broker down")}}
	pr := NewPaymentEventProducer(sender, "payment", fastPolicy(), nil, zaptest.NewLogger(t))

	require.NoError(t, pr.Publish(context.Background(), completedCard()))
	assert.Len(t, sender.records, 3)
}

func TestPublish_InvalidArgumentIsNotRetried(t *testing.T) {
	sender := &fakeSender{errs: []error{fmt.Errorf("%w: topic", ErrInvalidArgument)}}
	pr := NewPaymentEventProducer(sender, "payment", fastPolicy(), nil, zaptest.NewLogger(t))

	err := pr.Publish(context.Background(), completedCard())
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Len(t, sender.records, 1)
}

func TestPublish_HeadersClosedSendsFreshRecordOnce(t *testing.T) {
	sender := &fakeSender{errs: []error{ErrRecordHeadersClosed}}
	pr := NewPaymentEventProducer(sender, "payment", fastPolicy(), nil, zaptest.NewLogger(t))

	require.NoError(t, pr.Publish(context.Background(), completedCard()))
	require.Len(t, sender.records, 2)

	first, second := sender.records[0], sender.records[1]
	assert.Equal(t, first.Topic, second.Topic)
	assert.Equal(t, first.Key, second.Key)
	assert.NotEqual(t, headerValue(first, "event_id"), headerValue(second, "event_id"))
}

func TestPublish_HeadersClosedTwiceFails(t *testing.T) {
	sender := &fakeSender{errs: []error{ErrRecordHeadersClosed, ErrRecordHeadersClosed}}
	pr := NewPaymentEventProducer(sender, "payment", fastPolicy(), nil, zaptest.NewLogger(t))

	err := pr.Publish(context.Background(), completedCard())
	require.ErrorIs(t, err, ErrRecordHeadersClosed)
	assert.Len(t, sender.records, 2)
}

func TestPublish_ExhaustedNamesPaymentAndAttempts(t *testing.T) {
	boom := errors.New("broker down")
	sender := &fakeSender{errs: []error{boom, boom, boom}}
	pr := NewPaymentEventProducer(sender, "payment", fastPolicy(), nil, zaptest.NewLogger(t))
	p := completedCard()

	err := pr.Publish(context.Background(), p)
	require.ErrorIs(t, err, boom)

	var fe *failure.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 3, fe.Attempts)
	assert.Equal(t, p.ID.String(), fe.PaymentID)
}

func TestPublish_StalledBrokerTimesOutEachAttempt(t *testing.T) {
	sender := &stalledSender{}
	policy := fastPolicy()
	policy.AttemptTimeout = 20 * time.Millisecond
	pr := NewPaymentEventProducer(sender, "payment", policy, nil, zaptest.NewLogger(t))

	start := time.Now()
	err := pr.Publish(context.WithoutCancel(context.Background()), completedCard())

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 3, sender.sends)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewPaymentEventProducer_DefaultsSendTimeout(t *testing.T) {
	pr := NewPaymentEventProducer(&fakeSender{}, "", fastPolicy(), nil, nil)
	assert.Equal(t, DefaultSendTimeout, pr.policy.AttemptTimeout)
	assert.Equal(t, DefaultBaseTopic, pr.baseTopic)
}

func TestLogSender(t *testing.T) {
	s := NewLogSender(zaptest.NewLogger(t))
	assert.NoError(t, s.Send(context.Background(), Record{Topic: "payment-pending", Key: "k"}))
	assert.ErrorIs(t, s.Send(context.Background(), Record{}), ErrInvalidArgument)
}

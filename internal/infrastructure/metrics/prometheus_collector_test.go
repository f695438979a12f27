package metrics

import (
	"testing"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector_Counts(t *testing.T) {
	c := NewPrometheusCollector()

	c.ObservePayment("process", entities.PaymentTypePix, entities.PaymentStatusProcessing)
	c.ObservePayment("process", entities.PaymentTypePix, entities.PaymentStatusProcessing)
	c.ObserveFailure("refund", failure.KindValidation)
	c.ObservePublishFailure("payment-processing")
	c.ObserveCacheFailure("set")
	c.ObserveGatewayCall("process", "accepted", 120*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.paymentCounter.WithLabelValues("process", "PIX", "PROCESSING")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failureCounter.WithLabelValues("refund", "validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.publishFailures.WithLabelValues("payment-processing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cacheFailures.WithLabelValues("set")))

	n, err := testutil.GatherAndCount(c.Registry(), "payment_gateway_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewPrometheusCollector_IndependentRegistries(t *testing.T) {
	a, b := NewPrometheusCollector(), NewPrometheusCollector()
	a.ObserveCacheFailure("get")

	assert.Equal(t, 0.0, testutil.ToFloat64(b.cacheFailures.WithLabelValues("get")))
	assert.Equal(t, 1, testutil.CollectAndCount(a.cacheFailures))
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, Nop{}, OrNop(nil))
	c := NewPrometheusCollector()
	assert.Same(t, c, OrNop(c))
}

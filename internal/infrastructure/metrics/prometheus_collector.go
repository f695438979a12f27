package metrics

import (
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"
	"payment_service/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payment"

// PrometheusCollector records lifecycle metrics on its own registry so tests
// can build as many collectors as they need.
type PrometheusCollector struct {
	registry *prometheus.Registry

	paymentCounter  *prometheus.CounterVec
	failureCounter  *prometheus.CounterVec
	gatewayLatency  *prometheus.HistogramVec
	publishFailures *prometheus.CounterVec
	cacheFailures   *prometheus.CounterVec
}

var _ interfaces.IPaymentMetrics = (*PrometheusCollector)(nil)

func NewPrometheusCollector() *PrometheusCollector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &PrometheusCollector{
		registry: reg,

		// Pagamentos por operação, tipo e status final
		paymentCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of successful payment lifecycle operations",
			},
			[]string{"operation", "payment_type", "status"},
		),

		failureCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operation_errors_total",
				Help:      "Total number of failed payment lifecycle operations by error kind",
			},
			[]string{"operation", "kind"},
		),

		gatewayLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "gateway_duration_seconds",
				Help:      "Simulated gateway call duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~32s
			},
			[]string{"operation", "outcome"},
		),

		publishFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_publish_failures_total",
				Help:      "Lifecycle events that could not be published",
			},
			[]string{"topic"},
		),

		cacheFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_failures_total",
				Help:      "Cache operations that failed after retries",
			},
			[]string{"operation"},
		),
	}
}

func (c *PrometheusCollector) ObservePayment(op string, paymentType entities.PaymentType, status entities.PaymentStatus) {
	c.paymentCounter.WithLabelValues(op, string(paymentType), string(status)).Inc()
}

func (c *PrometheusCollector) ObserveFailure(op string, kind failure.Kind) {
	c.failureCounter.WithLabelValues(op, string(kind)).Inc()
}

func (c *PrometheusCollector) ObserveGatewayCall(op, outcome string, elapsed time.Duration) {
	c.gatewayLatency.WithLabelValues(op, outcome).Observe(elapsed.Seconds())
}

func (c *PrometheusCollector) ObservePublishFailure(topic string) {
	c.publishFailures.WithLabelValues(topic).Inc()
}

func (c *PrometheusCollector) ObserveCacheFailure(op string) {
	c.cacheFailures.WithLabelValues(op).Inc()
}

// Registry is served on /metrics.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// Nop discards every observation.
type Nop struct{}

var _ interfaces.IPaymentMetrics = Nop{}

func (Nop) ObservePayment(string, entities.PaymentType, entities.PaymentStatus) {}
func (Nop) ObserveFailure(string, failure.Kind)                                 {}
func (Nop) ObserveGatewayCall(string, string, time.Duration)                    {}
func (Nop) ObservePublishFailure(string)                                        {}
func (Nop) ObserveCacheFailure(string)                                          {}

// OrNop returns m, or Nop when m is nil.
func OrNop(m interfaces.IPaymentMetrics) interfaces.IPaymentMetrics {
	if m == nil {
		return Nop{}
	}
	return m
}

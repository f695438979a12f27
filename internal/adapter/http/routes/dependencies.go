package routes

import (
	"context"
	"fmt"

	"payment_service/internal/adapter/http/handlers"
	"payment_service/internal/adapter/persistence/repository"
	"payment_service/internal/config"
	"payment_service/internal/infrastructure/cache"
	"payment_service/internal/infrastructure/database"
	"payment_service/internal/infrastructure/messaging"
	"payment_service/internal/infrastructure/metrics"
	"payment_service/internal/infrastructure/payments"
	"payment_service/internal/usecase"
	"payment_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// dependencies is the wired object graph behind the HTTP routes.
type dependencies struct {
	paymentHandler *handlers.PaymentHandler
	collector      *metrics.PrometheusCollector
	closers        []func() error
}

func (d *dependencies) Close(log *zap.Logger) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			log.Warn("[payment][routes] close failed", zap.Error(err))
		}
	}
}

// buildDependencies wires every collaborator from cfg. gatewayOpts are
// applied after the configured ones.
func buildDependencies(ctx context.Context, cfg config.Config, log *zap.Logger, gatewayOpts ...payments.Option) (*dependencies, error) {
	d := &dependencies{collector: metrics.NewPrometheusCollector()}

	repo, closeRepo, err := newPaymentRepository(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	d.closers = append(d.closers, closeRepo)

	store, closeStore := newCacheStore(cfg, log)
	d.closers = append(d.closers, closeStore)

	sender, closeSender := newEventSender(cfg, log)
	d.closers = append(d.closers, closeSender)

	paymentCache := cache.NewPaymentCacheService(store, cfg.CacheTTL, cfg.CachePolicy(), d.collector, log)
	lifecycle := usecase.LifecycleDeps{
		Repo: repo,
		Gateway: payments.NewSimulatedGateway(log, append([]payments.Option{
			payments.WithTimeout(cfg.GatewayTimeout),
			payments.WithLatency(cfg.GatewayLatency),
			payments.WithMetrics(d.collector),
		}, gatewayOpts...)...),
		Events:  messaging.NewPaymentEventProducer(sender, cfg.EventTopic, cfg.EventRetry, d.collector, log),
		Cache:   paymentCache,
		Metrics: d.collector,
		Retry:   cfg.Retry,
		Logger:  log,
	}

	d.paymentHandler = handlers.NewPaymentHandler(
		usecase.NewProcessPaymentUseCase(lifecycle),
		usecase.NewCancelPaymentUseCase(lifecycle),
		usecase.NewRefundPaymentUseCase(lifecycle),
		usecase.NewGetPaymentUseCase(repo, paymentCache, log),
		usecase.NewListPaymentsUseCase(repo, log),
		log,
	)
	return d, nil
}

func newPaymentRepository(ctx context.Context, cfg config.Config, log *zap.Logger) (interfaces.IPaymentRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Repository {
	case config.RepositoryMemory:
		log.Info("[payment][routes] using in-memory repository")
		return repository.NewPaymentMemoryRepository(), noop, nil
	case config.RepositorySQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLiteDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		log.Info("[payment][routes] using sqlite repository", zap.String("dsn", cfg.SQLiteDSN))
		return repository.NewPaymentSQLiteRepository(db), db.Close, nil
	case config.RepositoryDynamoDB:
		settings := database.DynamoDBSettingsFromEnv()
		ddb, err := database.NewDynamoDBClient(ctx, settings, log)
		if err != nil {
			return nil, nil, fmt.Errorf("dynamodb client: %w", err)
		}
		if settings.Endpoint != "" {
			if err := database.EnsurePaymentsTable(ctx, ddb, cfg.PaymentsTable, log); err != nil {
				return nil, nil, fmt.Errorf("ensure payments table: %w", err)
			}
		}
		return repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown payment repository %q", cfg.Repository)
}

func newCacheStore(cfg config.Config, log *zap.Logger) (cache.Store, func() error) {
	if cfg.CacheBackend == config.CacheRedis {
		client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		log.Info("[payment][routes] using redis cache", zap.String("addr", cfg.RedisAddr))
		return cache.NewRedisStore(client), client.Close
	}
	log.Info("[payment][routes] using in-memory cache")
	store := cache.NewMemoryStore()
	return store, store.Close
}

func newEventSender(cfg config.Config, log *zap.Logger) (messaging.Sender, func() error) {
	if len(cfg.KafkaBrokers) > 0 {
		s := messaging.NewKafkaSender(cfg.KafkaBrokers, log)
		return s, s.Close
	}
	log.Info("[payment][routes] no kafka brokers configured; events are logged only")
	return messaging.NewLogSender(log), func() error { return nil }
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"payment_service/internal/infrastructure/retry"

	"go.uber.org/zap"
)

const (
	RepositoryDynamoDB = "dynamodb"
	RepositorySQLite   = "sqlite"
	RepositoryMemory   = "memory"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	HTTPPort int
	LogLevel string
	AppEnv   string

	Retry retry.Policy

	GatewayTimeout time.Duration
	GatewayLatency time.Duration

	EventTopic   string
	EventTimeout time.Duration
	EventRetry   retry.Policy
	KafkaBrokers []string

	CacheBackend  string
	CacheTTL      time.Duration
	CacheTimeout  time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Repository    string
	PaymentsTable string
	SQLiteDSN     string
}

// Load reads the service configuration from the environment. Malformed
// numbers fall back to their default and are reported on log.
func Load(log *zap.Logger) Config {
	if log == nil {
		log = zap.NewNop()
	}
	e := env{log: log}

	eventTimeout := e.duration("PAYMENT_EVENT_TIMEOUT", 5*time.Second)

	return Config{
		HTTPPort: e.int("HTTP_PORT", 8080),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),
		AppEnv:   getenvDefault("APP_ENV", "development"),

		Retry: retry.Policy{
			MaxAttempts:  e.int("PAYMENT_RETRY_MAX_ATTEMPTS", retry.DefaultMaxAttempts),
			InitialDelay: e.millis("PAYMENT_RETRY_INITIAL_DELAY_MS", 100),
			Multiplier:   retry.DefaultMultiplier,
		},

		GatewayTimeout: time.Duration(e.int("PAYMENT_GATEWAY_TIMEOUT_SECONDS", 10)) * time.Second,
		GatewayLatency: e.millis("PAYMENT_GATEWAY_LATENCY_MS", 100),

		EventTopic:   getenvDefault("PAYMENT_EVENT_TOPIC", "payment"),
		EventTimeout: eventTimeout,
		EventRetry: retry.Policy{
			MaxAttempts:    e.int("PAYMENT_EVENT_RETRY_ATTEMPTS", 3),
			InitialDelay:   e.millis("PAYMENT_EVENT_RETRY_DELAY_MS", 1000),
			Multiplier:     retry.DefaultMultiplier,
			AttemptTimeout: eventTimeout,
		},
		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),

		CacheBackend:  strings.ToLower(getenvDefault("CACHE_BACKEND", CacheMemory)),
		CacheTTL:      time.Duration(e.int("PAYMENT_CACHE_TTL_MINUTES", 60)) * time.Minute,
		CacheTimeout:  e.duration("PAYMENT_CACHE_TIMEOUT", time.Second),
		RedisAddr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       e.int("REDIS_DB", 0),

		Repository:    strings.ToLower(getenvDefault("PAYMENT_REPOSITORY", RepositoryDynamoDB)),
		PaymentsTable: getenvDefault("PAYMENTS_TABLE", "payments"),
		SQLiteDSN:     getenvDefault("SQLITE_DSN", "file:payments.db"),
	}
}

type env struct {
	log *zap.Logger
}

func (e env) int(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		e.log.Warn("[config] invalid value, using default",
			zap.String("key", key), zap.String("value", raw), zap.Int("default", def))
		return def
	}
	return v
}

func (e env) millis(key string, def int) time.Duration {
	return time.Duration(e.int(key, def)) * time.Millisecond
}

// duration reads a Go duration string such as "750ms" or "5s".
func (e env) duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		e.log.Warn("[config] invalid value, using default",
			zap.String("key", key), zap.String("value", raw), zap.Duration("default", def))
		return def
	}
	return v
}

// CachePolicy is the retry policy for cache calls, bounded per call by
// CacheTimeout.
func (c Config) CachePolicy() retry.Policy {
	p := c.Retry
	p.AttemptTimeout = c.CacheTimeout
	return p
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

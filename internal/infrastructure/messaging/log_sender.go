package messaging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// LogSender writes events to the log instead of a broker. Used when no
// Kafka brokers are configured.
type LogSender struct {
	log *zap.Logger
}

var _ Sender = (*LogSender)(nil)

func NewLogSender(log *zap.Logger) *LogSender {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, r Record) error {
	if r.Topic == "" {
		return fmt.Errorf("%w: empty topic", ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info("[payment][event] record",
		zap.String("topic", r.Topic),
		zap.String("key", r.Key),
		zap.Int("headers", len(r.Headers)),
		zap.ByteString("value", r.Value),
	)
	return nil
}

package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaSender writes records with a single kafka-go Writer. The topic is set
// per message, so one writer serves every status topic.
type KafkaSender struct {
	writer *kafka.Writer
	log    *zap.Logger
}

var _ Sender = (*KafkaSender)(nil)

func NewKafkaSender(brokers []string, log *zap.Logger) *KafkaSender {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("[payment][kafka] writer initialized", zap.Strings("brokers", brokers))
	return &KafkaSender{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
			WriteTimeout:           10 * time.Second,
		},
		log: log,
	}
}

func (s *KafkaSender) Send(ctx context.Context, r Record) error {
	if r.Topic == "" {
		return fmt.Errorf("%w: empty topic", ErrInvalidArgument)
	}

	headers := make([]kafka.Header, 0, len(r.Headers))
	for _, h := range r.Headers {
		headers = append(headers, kafka.Header{Key: h.Key, Value: h.Value})
	}

	err := s.writer.WriteMessages(ctx, kafka.Message{
		Topic:   r.Topic,
		Key:     []byte(r.Key),
		Value:   r.Value,
		Headers: headers,
	})
	if err != nil {
		return classifyKafkaError(err)
	}
	return nil
}

func (s *KafkaSender) Close() error {
	return s.writer.Close()
}

// classifyKafkaError tags errors the broker will keep rejecting as
// ErrInvalidArgument.
func classifyKafkaError(err error) error {
	var writeErrs kafka.WriteErrors
	if errors.As(err, &writeErrs) {
		for _, e := range writeErrs {
			if e != nil && isInvalidArgument(e) {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
		}
		return err
	}
	if isInvalidArgument(err) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return err
}

func isInvalidArgument(err error) bool {
	var tooLarge kafka.MessageTooLargeError
	return errors.As(err, &tooLarge) ||
		errors.Is(err, kafka.InvalidTopic) ||
		errors.Is(err, kafka.MessageSizeTooLarge) ||
		errors.Is(err, kafka.InvalidMessage) ||
		errors.Is(err, kafka.RecordListTooLarge)
}

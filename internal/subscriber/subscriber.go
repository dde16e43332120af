package subscriber

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jeffleon2/ums-payment-service/config"
	"github.com/jeffleon2/ums-payment-service/internal/metrics"
	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/jeffleon2/ums-payment-service/internal/publisher"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// MessageReader is the subset of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DLQPublisher receives messages that could not be processed.
type DLQPublisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// MessageHandler processes one message. Returning an error wrapping
// models.ErrMalformedEvent sends the message straight to the DLQ.
type MessageHandler func(ctx context.Context, topic string, key, value []byte) error

type KafkaConsumer struct {
	Readers      []MessageReader
	DLQPublisher DLQPublisher
	RetryConfig  config.RetryConfig
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq DLQPublisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]MessageReader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		RetryConfig:  retryConfig,
	}
}

// Listen consumes every reader until ctx is cancelled. Offsets are committed
// only after a message was handled or dead-lettered, so delivery is
// at-least-once.
func (c *KafkaConsumer) Listen(ctx context.Context, handler MessageHandler) {
	var wg sync.WaitGroup
	for _, reader := range c.Readers {
		wg.Add(1)
		go func(r MessageReader) {
			defer wg.Done()
			for {
				msg, err := r.FetchMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					logrus.Errorf("Kafka fetch error: %s", err.Error())
					if !sleep(ctx, time.Second) {
						return
					}
					continue
				}

				if !c.processMessage(ctx, msg, handler) {
					return
				}

				if err := r.CommitMessages(ctx, msg); err != nil {
					logrus.Errorf("Kafka commit error: topic=%s offset=%d: %s", msg.Topic, msg.Offset, err.Error())
				}
			}
		}(reader)
	}
	wg.Wait()
}

func (c *KafkaConsumer) Close() error {
	var errs []error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// processMessage reports false when ctx was cancelled before the message was
// settled; such messages are left uncommitted.
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler MessageHandler) bool {
	var err error
	attempts := 0

	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		attempts++
		err = handler(ctx, msg.Topic, msg.Key, msg.Value)
		if err == nil {
			return true
		}

		if errors.Is(err, models.ErrMalformedEvent) {
			logrus.Warnf("Malformed message, skipping retries: topic=%s key=%s: %s", msg.Topic, string(msg.Key), err.Error())
			break
		}
		if ctx.Err() != nil {
			return false
		}
		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		backoff := publisher.Backoff(c.RetryConfig, attempt)
		logrus.Warnf("Handler error, attempt %d/%d: %s. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err.Error(), backoff)
		if !sleep(ctx, backoff) {
			return false
		}
	}

	logrus.Errorf("Message failed after %d attempts: topic=%s, key=%s", attempts, msg.Topic, string(msg.Key))
	return c.deadLetter(ctx, msg, err, attempts)
}

// deadLetter keeps retrying the DLQ write until it succeeds. It reports false
// when ctx ends first, leaving the message uncommitted for redelivery.
func (c *KafkaConsumer) deadLetter(ctx context.Context, msg kafka.Message, cause error, attempts int) bool {
	if c.DLQPublisher == nil {
		return true
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Timestamp:     time.Now().UTC(),
		Attempts:      attempts,
	}
	if cause != nil {
		dlqMessage.Error = cause.Error()
	}

	for attempt := 0; ; attempt++ {
		err := c.DLQPublisher.Publish(ctx, models.PaymentsDLQTopic, string(msg.Key), dlqMessage)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return false
		}
		backoff := publisher.Backoff(c.RetryConfig, attempt)
		logrus.Errorf("Failed to send message to DLQ: %s. Retrying in %v", err.Error(), backoff)
		if !sleep(ctx, backoff) {
			return false
		}
	}

	metrics.DeadLettered.WithLabelValues(msg.Topic).Inc()
	logrus.Infof("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
	return true
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}

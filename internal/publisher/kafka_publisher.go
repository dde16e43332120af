package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/jeffleon2/ums-payment-service/config"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// MessageWriter is the subset of *kafka.Writer used by the publisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher manages Kafka message publishing with retry capabilities.
// It keeps one writer per topic and retries failed writes with exponential
// backoff.
type KafkaPublisher struct {
	Writers     map[string]MessageWriter
	RetryConfig config.RetryConfig
}

// NewKafkaPublisher creates a KafkaPublisher with writers for the given topics.
// Zero retry values fall back to 5 attempts, 100ms base delay and 10s max delay.
func NewKafkaPublisher(brokers []string, topics []string, retryConfig config.RetryConfig) *KafkaPublisher {
	writers := make(map[string]MessageWriter)
	for _, t := range topics {
		writers[t] = &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  t,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		}
	}

	return NewWithWriters(writers, retryConfig)
}

// NewWithWriters builds a publisher over already constructed writers.
func NewWithWriters(writers map[string]MessageWriter, retryConfig config.RetryConfig) *KafkaPublisher {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}

	return &KafkaPublisher{
		Writers:     writers,
		RetryConfig: retryConfig,
	}
}

// Publish marshals message to JSON and writes it to topic under key.
// Messages sharing a key land on the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key string, message interface{}) error {
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	return p.publishWithRetry(ctx, writer, msg, topic)
}

func (p *KafkaPublisher) Close() error {
	var firstErr error
	for topic, w := range p.Writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("error closing writer for topic %s: %w", topic, err)
		}
	}
	return firstErr
}

func (p *KafkaPublisher) publishWithRetry(ctx context.Context, writer MessageWriter, msg kafka.Message, topic string) error {
	var lastErr error

	for attempt := 0; attempt < p.RetryConfig.MaxAttempts; attempt++ {
		err := writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				logrus.Infof("[Kafka Publisher] Message successfully published to topic '%s' after %d attempts", topic, attempt+1)
			}
			return nil
		}

		lastErr = err

		if attempt == p.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := p.calculateBackoff(attempt)

		logrus.Warnf("[Kafka Publisher] Retry %d/%d for topic '%s' after %v: %v",
			attempt+1, p.RetryConfig.MaxAttempts, topic, delay, err)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
		topic, p.RetryConfig.MaxAttempts, lastErr)
}

// calculateBackoff returns 2^attempt * BaseDelay capped at MaxDelay, with
// +-15% jitter when enabled.
func (p *KafkaPublisher) calculateBackoff(attempt int) time.Duration {
	return Backoff(p.RetryConfig, attempt)
}

// Backoff is shared with the subscriber so both sides of the channel retry alike.
func Backoff(cfg config.RetryConfig, attempt int) time.Duration {
	delay := cfg.MaxDelay
	if d := math.Pow(2, float64(attempt)) * float64(cfg.BaseDelay); d < float64(cfg.MaxDelay) {
		delay = time.Duration(d)
	}

	if cfg.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Error("Error can't get the environment variables by file")
		}
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Reconcile
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`

	MaxOpenConns int `env:"DB_MAX_OPEN_CONNS" envDefault:"16"`
	MaxIdleConns int `env:"DB_MAX_IDLE_CONNS" envDefault:"8"`
}

type APP struct {
	PORT             string        `env:"APP_PORT" envDefault:"8080"`
	LogLevel         string        `env:"APP_LOG_LEVEL" envDefault:"info"`
	OperationTimeout time.Duration `env:"APP_OPERATION_TIMEOUT" envDefault:"5s"`
	GatewayDelay     time.Duration `env:"APP_GATEWAY_DELAY" envDefault:"1s"`
}

type Kafka struct {
	Brokers              string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PaymentConsumerGroup string `env:"KAFKA_PAYMENT_GROUP_ID" envDefault:"payment-service"`
	PublishTopics        string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payment.events.confirmed,payment.events.failed,payments.dlq"`
	SubscriberTopics     string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"enrollment.events.registration_pending_payment"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Reconcile controls the sweep that republishes outcomes whose first
// publish failed.
type Reconcile struct {
	Interval     time.Duration `env:"RECONCILE_INTERVAL" envDefault:"30s"`
	BatchSize    int           `env:"RECONCILE_BATCH_SIZE" envDefault:"100"`
	PublishLease time.Duration `env:"RECONCILE_PUBLISH_LEASE" envDefault:"1m"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

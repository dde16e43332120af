package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ums-payment-service/config"
	"github.com/jeffleon2/ums-payment-service/internal/database"
	"github.com/jeffleon2/ums-payment-service/internal/handlers"
	"github.com/jeffleon2/ums-payment-service/internal/metrics"
	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/jeffleon2/ums-payment-service/internal/publisher"
	"github.com/jeffleon2/ums-payment-service/internal/repository/posgrest"
	"github.com/jeffleon2/ums-payment-service/internal/service"
	"github.com/jeffleon2/ums-payment-service/internal/simulator"
	"github.com/jeffleon2/ums-payment-service/internal/subscriber"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	Router *gin.Engine

	server       *http.Server
	publisher    *publisher.KafkaPublisher
	consumer     *subscriber.KafkaConsumer
	reconciler   *service.Reconciler
	eventHandler *handlers.EventHandler
}

func (a *App) Initialize(cfg *config.Config) error {
	a.config = cfg
	configureLogging(cfg.APP.LogLevel)

	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	if os.Getenv("GO_ENV") == "local" {
		if err := database.SeedTransactions(db); err != nil {
			logrus.Warnf("Failed to seed transactions: %s", err.Error())
		}
	}

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	retryConfig := cfg.Kafka.GetRetryConfig()

	transactionRepo := posgrest.NewTransactionRepository(db)
	a.publisher = publisher.NewKafkaPublisher(brokers, publishTopics, retryConfig)
	gateway := simulator.NewGateway(cfg.APP.GatewayDelay)

	transactionService := service.NewTransactionService(transactionRepo, a.publisher, gateway, service.Options{
		OperationTimeout: cfg.APP.OperationTimeout,
		PublishLease:     cfg.Reconcile.PublishLease,
	})
	a.reconciler = service.NewReconciler(transactionService, cfg.Reconcile.Interval, cfg.Reconcile.BatchSize)

	a.eventHandler = handlers.NewEventHandler(transactionService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, a.reconciler, transactionRepo)

	metrics.RegisterMetrics(prometheus.DefaultRegisterer)

	a.Router = gin.Default()
	a.RegisterRoutes(transactionHandler)
	a.server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.APP.PORT),
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	subscriberTopics := strings.Split(cfg.Kafka.SubscriberTopics, ",")
	a.consumer = subscriber.NewMultiTopicConsumer(brokers, subscriberTopics, cfg.Kafka.PaymentConsumerGroup, a.publisher, retryConfig)

	return nil
}

// Run serves HTTP, consumes ingress events and runs the reconciliation sweep
// until ctx is cancelled or one of them fails.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.Infof("HTTP server listening on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		a.consumer.Listen(ctx, a.eventHandler.HandleEvents)
		return nil
	})

	g.Go(func() error {
		return a.reconciler.Run(ctx)
	})

	err := g.Wait()
	a.close()
	return err
}

func (a *App) close() {
	if err := a.consumer.Close(); err != nil {
		logrus.Errorf("Error closing consumer: %s", err.Error())
	}
	if err := a.publisher.Close(); err != nil {
		logrus.Errorf("Error closing publisher: %s", err.Error())
	}
	logrus.Info("Payment service stopped")
}

func configureLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

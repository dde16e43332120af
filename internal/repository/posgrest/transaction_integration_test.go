package posgrest_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/jeffleon2/ums-payment-service/internal/repository/posgrest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) *gorm.DB {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "payment_db", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s user=postgres password=secret dbname=payment_db port=%s sslmode=disable", host, port.Port())

	var db *gorm.DB
	require.Eventually(t, func() bool {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		return err == nil && sqlDB.PingContext(ctx) == nil
	}, 20*time.Second, 250*time.Millisecond)

	require.NoError(t, db.AutoMigrate(&models.Transaction{}))
	return db
}

func pendingTransaction(registrationID string) *models.Transaction {
	now := time.Now().UTC()
	return &models.Transaction{
		RegistrationID: registrationID,
		MessageID:      "msg-" + registrationID,
		Amount:         decimal.NewFromInt(500),
		Currency:       "USD",
		Status:         models.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestIntegration_CreateIsIdempotentOnRegistration(t *testing.T) {
	repo := posgrest.NewTransactionRepository(setupPostgres(t))
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created, duplicates := 0, 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(ctx, pendingTransaction("R1"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, models.ErrDuplicateKey):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 9, duplicates)
}

func TestIntegration_UpdateStatusCompareAndSwap(t *testing.T) {
	repo := posgrest.NewTransactionRepository(setupPostgres(t))
	ctx := context.Background()

	tx := pendingTransaction("R2")
	require.NoError(t, repo.Create(ctx, tx))

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners, losers := 0, 0
	for i := 0; i < 20; i++ {
		next := models.StatusSuccess
		if i%2 == 1 {
			next = models.StatusFailed
		}
		wg.Add(1)
		go func(next models.TransactionStatus) {
			defer wg.Done()
			_, err := repo.UpdateStatus(ctx, tx.ID, models.StatusPending, next, models.StatusChange{At: time.Now().UTC(), FailureReason: "race"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners++
			} else if errors.Is(err, models.ErrConcurrentModification) {
				losers++
			}
		}(next)
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, 19, losers)

	stored, err := repo.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.True(t, stored.Status.IsTerminal())
}

func TestIntegration_PublishLease(t *testing.T) {
	repo := posgrest.NewTransactionRepository(setupPostgres(t))
	ctx := context.Background()
	now := time.Now().UTC()

	tx := pendingTransaction("R3")
	require.NoError(t, repo.Create(ctx, tx))
	_, err := repo.UpdateStatus(ctx, tx.ID, models.StatusPending, models.StatusFailed, models.StatusChange{At: now, FailureReason: "insufficient funds"})
	require.NoError(t, err)

	unpublished, err := repo.ListUnpublished(ctx, now, 10)
	require.NoError(t, err)
	assert.Len(t, unpublished, 1)

	claimed, err := repo.ClaimPublish(ctx, tx.ID, now, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = repo.ClaimPublish(ctx, tx.ID, now, now.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, claimed)

	require.NoError(t, repo.MarkPublished(ctx, tx.ID, now))
	unpublished, err = repo.ListUnpublished(ctx, now.Add(2*time.Minute), 10)
	require.NoError(t, err)
	assert.Empty(t, unpublished)
}

func TestIntegration_ListPendingPage(t *testing.T) {
	repo := posgrest.NewTransactionRepository(setupPostgres(t))
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		tx := pendingTransaction(fmt.Sprintf("P%d", i))
		tx.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, tx))
	}

	first, err := repo.ListPendingPage(ctx, time.Now().UTC(), nil, 3)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "P0", first[0].RegistrationID)

	last := first[len(first)-1]
	rest, err := repo.ListPendingPage(ctx, time.Now().UTC(), &models.PageCursor{CreatedAt: last.CreatedAt, ID: last.ID}, 3)
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, "P3", rest[0].RegistrationID)
	assert.Equal(t, "P4", rest[1].RegistrationID)
}

package posgrest_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/jeffleon2/ums-payment-service/internal/repository/posgrest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (*posgrest.TransactionRepository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return posgrest.NewTransactionRepository(db), mock
}

var transactionColumns = []string{"id", "registration_id", "message_id", "amount", "currency", "status", "created_at", "updated_at", "outcome_published"}

func transactionRow(rows *sqlmock.Rows, id string, status models.TransactionStatus) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, "R1", "M1", "500.00", "USD", string(status), now, now, false)
}

func TestCreate_Inserted(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "transactions"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx := &models.Transaction{
		RegistrationID: "R1",
		MessageID:      "M1",
		Amount:         decimal.NewFromInt(500),
		Currency:       "USD",
		Status:         models.StatusPending,
	}
	err := repo.Create(context.Background(), tx)

	assert.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateKey(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT DO NOTHING`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Create(context.Background(), &models.Transaction{RegistrationID: "R1", Status: models.StatusPending})

	assert.ErrorIs(t, err, models.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DatabaseError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "transactions"`)).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), &models.Transaction{RegistrationID: "R1"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrDuplicateKey)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "transactions" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	tx, err := repo.GetByID(context.Background(), "missing")

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestFindByIdempotencyKey_Found(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "transactions" WHERE registration_id = $1`)).
		WillReturnRows(transactionRow(sqlmock.NewRows(transactionColumns), "T1", models.StatusPending))

	tx, err := repo.FindByIdempotencyKey(context.Background(), "R1")

	require.NoError(t, err)
	assert.Equal(t, "T1", tx.ID)
	assert.Equal(t, models.StatusPending, tx.Status)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(500)))
}

func TestUpdateStatus_Swapped(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "transactions" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "transactions" WHERE id = $1`)).
		WillReturnRows(transactionRow(sqlmock.NewRows(transactionColumns), "T1", models.StatusSuccess))

	tx, err := repo.UpdateStatus(context.Background(), "T1", models.StatusPending, models.StatusSuccess, models.StatusChange{
		SettlementRef: "tx-manual-T1-1",
		At:            time.Now(),
		LeaseUntil:    time.Now().Add(time.Minute),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, tx.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_LostRace(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "transactions" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "transactions" WHERE id = $1`)).
		WillReturnRows(transactionRow(sqlmock.NewRows(transactionColumns), "T1", models.StatusFailed))

	tx, err := repo.UpdateStatus(context.Background(), "T1", models.StatusPending, models.StatusSuccess, models.StatusChange{At: time.Now()})

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, models.ErrConcurrentModification)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "transactions" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "transactions" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	_, err := repo.UpdateStatus(context.Background(), "nope", models.StatusPending, models.StatusFailed, models.StatusChange{At: time.Now()})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestClaimPublish(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "transactions" SET "publish_lease_until"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "transactions" SET "publish_lease_until"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.ClaimPublish(context.Background(), "T1", now, now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = repo.ClaimPublish(context.Background(), "T1", now, now.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUnpublished(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "transactions" WHERE (status IN ($1,$2) AND outcome_published = $3) ` +
		`AND ((publish_lease_until IS NULL OR publish_lease_until < $4)) ORDER BY updated_at ASC`)).
		WillReturnRows(transactionRow(sqlmock.NewRows(transactionColumns), "T1", models.StatusSuccess))

	txs, err := repo.ListUnpublished(context.Background(), time.Now(), 10)

	require.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPendingPage_WithCursor(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`(created_at, id) > ($3, $4) ORDER BY created_at ASC,id ASC`)).
		WillReturnRows(transactionRow(sqlmock.NewRows(transactionColumns), "T2", models.StatusPending))

	txs, err := repo.ListPendingPage(context.Background(), time.Now(), &models.PageCursor{CreatedAt: time.Now(), ID: "T1"}, 10)

	require.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, "T2", txs[0].ID)
}

func TestMarkPublishedAndRecordFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "transactions" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "transactions" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkPublished(context.Background(), "T1", time.Now()))
	assert.NoError(t, repo.RecordPublishFailure(context.Background(), "T2", "broker unavailable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package posgrest

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/ums-payment-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository is the durable store for payment transactions.
// Uniqueness of registration_id is enforced by the database; status changes
// are conditional updates so concurrent writers cannot both succeed.
type TransactionRepository struct {
	*repository[models.Transaction]
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{New[models.Transaction](db)}
}

// FindByIdempotencyKey looks a transaction up by its registration id.
func (r *TransactionRepository) FindByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error) {
	return r.FirstBy(ctx, "registration_id = ?", key)
}

// Create inserts the transaction unless one already exists for the same
// registration, in which case models.ErrDuplicateKey is returned.
func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(tx)
	if result.Error != nil {
		return fmt.Errorf("error creating transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrDuplicateKey
	}
	return nil
}

// UpdateStatus moves a transaction from expected to next in a single
// conditional UPDATE and returns the stored row.
func (r *TransactionRepository) UpdateStatus(
	ctx context.Context,
	id string,
	expected, next models.TransactionStatus,
	change models.StatusChange,
) (*models.Transaction, error) {
	updates := map[string]interface{}{
		"status":     next,
		"updated_at": change.At,
	}
	if change.SettlementRef != "" {
		updates["settlement_ref"] = change.SettlementRef
	}
	if change.FailureReason != "" {
		updates["failure_reason"] = change.FailureReason
	}
	if !change.LeaseUntil.IsZero() {
		updates["publish_lease_until"] = change.LeaseUntil
	}

	result := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("error updating transaction status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, models.ErrConcurrentModification
	}

	return r.GetByID(ctx, id)
}

// ListByStatus backs the query surface; newest first.
func (r *TransactionRepository) ListByStatus(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	q := r.db.WithContext(ctx).Model(&models.Transaction{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.StudentID != "" {
		q = q.Where("student_id = ?", filter.StudentID)
	}

	var txs []models.Transaction
	if err := q.Order("created_at DESC").Order("id DESC").Limit(filter.Limit).Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// ListPendingPage returns one keyset page of pending transactions created at
// or before asOf, oldest first.
func (r *TransactionRepository) ListPendingPage(ctx context.Context, asOf time.Time, after *models.PageCursor, limit int) ([]models.Transaction, error) {
	q := r.db.WithContext(ctx).
		Where("status = ? AND created_at <= ?", models.StatusPending, asOf)
	if after != nil {
		q = q.Where("(created_at, id) > (?, ?)", after.CreatedAt, after.ID)
	}

	var txs []models.Transaction
	if err := q.Order("created_at ASC").Order("id ASC").Limit(limit).Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// ListUnpublished returns terminal transactions whose outcome event has not
// been confirmed and whose publish lease is free at now.
func (r *TransactionRepository) ListUnpublished(ctx context.Context, now time.Time, limit int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("status IN ? AND outcome_published = ?", []models.TransactionStatus{models.StatusSuccess, models.StatusFailed}, false).
		Where("(publish_lease_until IS NULL OR publish_lease_until < ?)", now).
		Order("updated_at ASC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// ClaimPublish takes the publish lease for id until the given time. It
// reports false when the outcome is already published or another worker
// holds a live lease.
func (r *TransactionRepository) ClaimPublish(ctx context.Context, id string, now, until time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ? AND outcome_published = ?", id, false).
		Where("(publish_lease_until IS NULL OR publish_lease_until < ?)", now).
		UpdateColumns(map[string]interface{}{
			"publish_lease_until": until,
		})
	if result.Error != nil {
		return false, fmt.Errorf("error claiming publish lease: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *TransactionRepository) MarkPublished(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"outcome_published":    true,
			"outcome_published_at": at,
			"publish_attempts":     gorm.Expr("publish_attempts + 1"),
			"last_publish_error":   "",
			"publish_lease_until":  nil,
		}).Error
}

// RecordPublishFailure keeps the failure for the reconciliation sweep and
// releases the lease so the next sweep can retry.
func (r *TransactionRepository) RecordPublishFailure(ctx context.Context, id string, reason string) error {
	return r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"publish_attempts":    gorm.Expr("publish_attempts + 1"),
			"last_publish_error":  reason,
			"publish_lease_until": nil,
		}).Error
}

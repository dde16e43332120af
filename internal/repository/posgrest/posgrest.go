package posgrest

import (
	"context"
	"errors"

	"github.com/jeffleon2/ums-payment-service/internal/models"
	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// It provides the lookups shared by every entity type T.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// GetByID retrieves a single entity by its ID.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.FirstBy(ctx, "id = ?", id)
}

// FirstBy retrieves the first entity matching the condition.
// Missing rows are reported as models.ErrNotFound.
func (r *repository[T]) FirstBy(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Ping checks the underlying connection pool.
func (r *repository[T]) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

package database

import (
	"time"

	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedTransactions inserts a few pending transactions for local development.
// Existing registrations are left untouched, so the seed can run on every start.
func SeedTransactions(db *gorm.DB) error {
	now := time.Now().UTC()
	transactions := []models.Transaction{
		{
			ID:             "00000000-0000-4000-8000-000000000001",
			RegistrationID: "seed-registration-1",
			MessageID:      "seed-message-1",
			StudentID:      "student_1",
			Amount:         decimal.RequireFromString("500.00"),
			Currency:       "USD",
			Status:         models.StatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             "00000000-0000-4000-8000-000000000002",
			RegistrationID: "seed-registration-2",
			MessageID:      "seed-message-2",
			StudentID:      "student_2",
			Amount:         decimal.RequireFromString("301.00"),
			Currency:       "USD",
			Status:         models.StatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&transactions)
	if result.Error != nil {
		return result.Error
	}

	logrus.Infof("Seeded %d pending transaction(s)", result.RowsAffected)
	return nil
}

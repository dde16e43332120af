package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionStatus string
type Currency string

const (
	StatusPending TransactionStatus = "PENDING"
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
)

// Transaction is the single persisted entity of the service. Identity,
// registration and amount fields never change after creation; Status only
// moves from PENDING to one of the terminal states.
type Transaction struct {
	ID             string            `gorm:"primaryKey;size:36" json:"transaction_id"`
	RegistrationID string            `gorm:"size:64;not null;uniqueIndex" json:"registration_id"`
	MessageID      string            `gorm:"size:128;index" json:"message_id"`
	StudentID      string            `gorm:"size:64;index" json:"student_id,omitempty"`
	Amount         decimal.Decimal   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency       Currency          `gorm:"size:3;not null" json:"currency"`
	Status         TransactionStatus `gorm:"size:20;not null;index:idx_transactions_status_created,priority:1" json:"status"`
	SettlementRef  string            `gorm:"size:128" json:"settlement_ref,omitempty"`
	FailureReason  string            `gorm:"size:255" json:"failure_reason,omitempty"`
	CreatedAt      time.Time         `gorm:"not null;index:idx_transactions_status_created,priority:2" json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	OutcomePublished   bool       `gorm:"not null" json:"outcome_published"`
	OutcomePublishedAt *time.Time `json:"outcome_published_at,omitempty"`
	PublishAttempts    int        `gorm:"not null" json:"publish_attempts"`
	LastPublishError   string     `gorm:"size:512" json:"last_publish_error,omitempty"`
	PublishLeaseUntil  *time.Time `json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	return
}

func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed:
		return true
	default:
		return false
	}
}

func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// IsValid accepts any ISO 4217 shaped code: three upper-case letters.
func (c Currency) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// StatusChange carries the fields written together with a status transition.
type StatusChange struct {
	SettlementRef string
	FailureReason string
	At            time.Time
	LeaseUntil    time.Time
}

// TransactionFilter narrows the query surface listing.
type TransactionFilter struct {
	Status    TransactionStatus
	StudentID string
	Limit     int
}

// PageCursor is a keyset position in a created_at/id ordered listing.
type PageCursor struct {
	CreatedAt time.Time
	ID        string
}

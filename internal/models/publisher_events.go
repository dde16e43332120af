package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentConfirmedTopic = "payment.events.confirmed"
	PaymentFailedTopic    = "payment.events.failed"
	PaymentsDLQTopic      = "payments.dlq"

	PaymentConfirmedType = "PaymentConfirmed"
	PaymentFailedType    = "PaymentFailed"
)

type OutcomeEnvelope struct {
	Type       string    `json:"type"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PaymentConfirmedEvent struct {
	TransactionID  string          `json:"transaction_id"`
	RegistrationID string          `json:"registration_id"`
	StudentID      string          `json:"student_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	SettlementRef  string          `json:"settlement_ref,omitempty"`
}

type PaymentFailedEvent struct {
	TransactionID  string `json:"transaction_id"`
	RegistrationID string `json:"registration_id"`
	StudentID      string `json:"student_id,omitempty"`
	Reason         string `json:"reason"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Error         string    `json:"error"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}

// OutcomeFor builds the topic and envelope announcing a terminal transaction.
// It returns false for transactions that are still pending.
func OutcomeFor(tx *Transaction, at time.Time) (string, OutcomeEnvelope, bool) {
	switch tx.Status {
	case StatusSuccess:
		return PaymentConfirmedTopic, OutcomeEnvelope{
			Type: PaymentConfirmedType,
			Payload: PaymentConfirmedEvent{
				TransactionID:  tx.ID,
				RegistrationID: tx.RegistrationID,
				StudentID:      tx.StudentID,
				Amount:         tx.Amount,
				Currency:       string(tx.Currency),
				SettlementRef:  tx.SettlementRef,
			},
			OccurredAt: at,
		}, true
	case StatusFailed:
		return PaymentFailedTopic, OutcomeEnvelope{
			Type: PaymentFailedType,
			Payload: PaymentFailedEvent{
				TransactionID:  tx.ID,
				RegistrationID: tx.RegistrationID,
				StudentID:      tx.StudentID,
				Reason:         tx.FailureReason,
			},
			OccurredAt: at,
		}, true
	default:
		return "", OutcomeEnvelope{}, false
	}
}

package models

import "github.com/shopspring/decimal"

const (
	RegistrationPendingPaymentTopic = "enrollment.events.registration_pending_payment"

	RegistrationPendingPaymentType = "RegistrationPendingPayment"
)

type RegistrationPendingPaymentEvent struct {
	Type      string                       `json:"type"`
	MessageID string                       `json:"message_id"`
	Payload   RegistrationPendingPaymentV1 `json:"payload"`
}

type RegistrationPendingPaymentV1 struct {
	RegistrationID string          `json:"registration_id"`
	StudentID      string          `json:"student_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
}

package dto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/shopspring/decimal"
)

// PendingPayment is the validated content of a RegistrationPendingPayment event.
type PendingPayment struct {
	RegistrationID string          `json:"registration_id"`
	MessageID      string          `json:"message_id"`
	StudentID      string          `json:"student_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
}

// Column limits of the transactions table.
const (
	maxRegistrationIDLen = 64
	maxMessageIDLen      = 128
	maxStudentIDLen      = 64
	amountScale          = 2
)

// maxAmount is the first value numeric(12,2) cannot hold.
var maxAmount = decimal.New(1, 10)

func FromEvent(event models.RegistrationPendingPaymentEvent, fallbackMessageID string) *PendingPayment {
	messageID := event.MessageID
	if strings.TrimSpace(messageID) == "" {
		messageID = fallbackMessageID
	}
	return &PendingPayment{
		RegistrationID: event.Payload.RegistrationID,
		MessageID:      messageID,
		StudentID:      event.Payload.StudentID,
		Amount:         event.Payload.Amount,
		Currency:       event.Payload.Currency,
	}
}

func (p *PendingPayment) Sanitize() {
	p.RegistrationID = strings.TrimSpace(p.RegistrationID)
	p.MessageID = strings.TrimSpace(p.MessageID)
	p.StudentID = strings.TrimSpace(p.StudentID)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
}

func (p *PendingPayment) Validate() error {
	if p.RegistrationID == "" {
		return fmt.Errorf("%w: registration_id is required", models.ErrMalformedEvent)
	}
	if p.MessageID == "" {
		return fmt.Errorf("%w: message_id is required", models.ErrMalformedEvent)
	}
	if err := checkText("registration_id", p.RegistrationID, maxRegistrationIDLen); err != nil {
		return err
	}
	if err := checkText("message_id", p.MessageID, maxMessageIDLen); err != nil {
		return err
	}
	if err := checkText("student_id", p.StudentID, maxStudentIDLen); err != nil {
		return err
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", models.ErrMalformedEvent)
	}
	if !p.Amount.Equal(p.Amount.Round(amountScale)) {
		return fmt.Errorf("%w: amount %s has more than %d decimal places", models.ErrMalformedEvent, p.Amount, amountScale)
	}
	if p.Amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: amount %s is too large", models.ErrMalformedEvent, p.Amount)
	}
	if !models.Currency(p.Currency).IsValid() {
		return fmt.Errorf("%w: invalid currency %q", models.ErrMalformedEvent, p.Currency)
	}
	return nil
}

func checkText(field, value string, maxLen int) error {
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: %s is not valid UTF-8", models.ErrMalformedEvent, field)
	}
	if len(value) > maxLen {
		return fmt.Errorf("%w: %s longer than %d bytes", models.ErrMalformedEvent, field, maxLen)
	}
	return nil
}

func (p *PendingPayment) ToEntity() *models.Transaction {
	return &models.Transaction{
		RegistrationID: p.RegistrationID,
		MessageID:      p.MessageID,
		StudentID:      p.StudentID,
		Amount:         p.Amount,
		Currency:       models.Currency(p.Currency),
		Status:         models.StatusPending,
	}
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

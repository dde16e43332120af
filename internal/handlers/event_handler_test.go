package handlers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffleon2/ums-payment-service/internal/handlers"
	"github.com/jeffleon2/ums-payment-service/internal/handlers/mocks"
	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/jeffleon2/ums-payment-service/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const registrationEvent = `{"type":"RegistrationPendingPayment","message_id":"M1","payload":{"registration_id":"R1","student_id":"S1","amount":500,"currency":"USD"}}`

func TestHandleEvents_CreatesPendingTransaction(t *testing.T) {
	mockService := mocks.NewMockPendingPaymentService(t)
	handler := handlers.NewEventHandler(mockService)
	ctx := context.Background()

	mockService.EXPECT().
		CreateFromPendingPayment(ctx, mock.MatchedBy(func(p *dto.PendingPayment) bool {
			return p.RegistrationID == "R1" && p.MessageID == "M1" && p.StudentID == "S1" &&
				p.Amount.Equal(decimal.NewFromInt(500)) && p.Currency == "USD"
		})).
		Return(&models.Transaction{ID: "T1", RegistrationID: "R1", Status: models.StatusPending}, true, nil).
		Once()

	err := handler.HandleEvents(ctx, models.RegistrationPendingPaymentTopic, []byte("key-1"), []byte(registrationEvent))

	assert.NoError(t, err)
}

func TestHandleEvents_DuplicateIsSuccess(t *testing.T) {
	mockService := mocks.NewMockPendingPaymentService(t)
	handler := handlers.NewEventHandler(mockService)
	ctx := context.Background()

	mockService.EXPECT().
		CreateFromPendingPayment(ctx, mock.AnythingOfType("*dto.PendingPayment")).
		Return(&models.Transaction{ID: "T1", RegistrationID: "R1"}, false, nil).
		Once()

	err := handler.HandleEvents(ctx, models.RegistrationPendingPaymentTopic, nil, []byte(registrationEvent))

	assert.NoError(t, err)
}

func TestHandleEvents_MessageIDFallsBackToKey(t *testing.T) {
	mockService := mocks.NewMockPendingPaymentService(t)
	handler := handlers.NewEventHandler(mockService)
	ctx := context.Background()
	value := `{"type":"RegistrationPendingPayment","payload":{"registration_id":"R1","amount":"120.50","currency":"eur"}}`

	mockService.EXPECT().
		CreateFromPendingPayment(ctx, mock.MatchedBy(func(p *dto.PendingPayment) bool {
			return p.MessageID == "kafka-key" && p.Amount.Equal(decimal.RequireFromString("120.50"))
		})).
		Return(&models.Transaction{ID: "T1"}, true, nil).
		Once()

	err := handler.HandleEvents(ctx, models.RegistrationPendingPaymentTopic, []byte("kafka-key"), []byte(value))

	assert.NoError(t, err)
}

func TestHandleEvents_Malformed(t *testing.T) {
	cases := map[string]string{
		"invalid json": `{"type":`,
		"wrong type":   `{"type":"SomethingElse","message_id":"M1","payload":{}}`,
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			mockService := mocks.NewMockPendingPaymentService(t)
			handler := handlers.NewEventHandler(mockService)

			err := handler.HandleEvents(context.Background(), models.RegistrationPendingPaymentTopic, nil, []byte(value))

			assert.ErrorIs(t, err, models.ErrMalformedEvent)
			mockService.AssertNotCalled(t, "CreateFromPendingPayment", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleEvents_ServiceError(t *testing.T) {
	mockService := mocks.NewMockPendingPaymentService(t)
	handler := handlers.NewEventHandler(mockService)
	ctx := context.Background()
	expectedError := errors.New("database error")

	mockService.EXPECT().
		CreateFromPendingPayment(ctx, mock.Anything).
		Return(nil, false, expectedError).
		Once()

	err := handler.HandleEvents(ctx, models.RegistrationPendingPaymentTopic, nil, []byte(registrationEvent))

	assert.ErrorIs(t, err, expectedError)
	assert.NotErrorIs(t, err, models.ErrMalformedEvent)
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jeffleon2/ums-payment-service/internal/metrics"
	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/jeffleon2/ums-payment-service/internal/models/dto"
	"github.com/jeffleon2/ums-payment-service/internal/service"
	"github.com/sirupsen/logrus"
)

type PendingPaymentService interface {
	CreateFromPendingPayment(ctx context.Context, payment *dto.PendingPayment) (*models.Transaction, bool, error)
}

var _ PendingPaymentService = (*service.TransactionService)(nil)

// EventHandler turns enrollment events into pending transactions.
type EventHandler struct {
	Service PendingPaymentService
}

func NewEventHandler(s PendingPaymentService) *EventHandler {
	return &EventHandler{Service: s}
}

// HandleEvents decodes one ingress message. The Kafka key stands in for the
// message id when the envelope carries none.
func (h *EventHandler) HandleEvents(ctx context.Context, topic string, key, value []byte) error {
	var event models.RegistrationPendingPaymentEvent
	if err := json.Unmarshal(value, &event); err != nil {
		metrics.IngressMessages.WithLabelValues("malformed").Inc()
		logrus.Errorf("Error parsing registration event from %s: %s", topic, err.Error())
		return fmt.Errorf("%w: error parsing registration event: %s", models.ErrMalformedEvent, err.Error())
	}
	if event.Type != models.RegistrationPendingPaymentType {
		metrics.IngressMessages.WithLabelValues("malformed").Inc()
		return fmt.Errorf("%w: unexpected event type %q on %s", models.ErrMalformedEvent, event.Type, topic)
	}

	tx, created, err := h.Service.CreateFromPendingPayment(ctx, dto.FromEvent(event, string(key)))
	if err != nil {
		if errors.Is(err, models.ErrMalformedEvent) {
			metrics.IngressMessages.WithLabelValues("malformed").Inc()
		} else {
			metrics.IngressMessages.WithLabelValues("error").Inc()
		}
		return fmt.Errorf("error handling registration event: %w", err)
	}

	if created {
		metrics.IngressMessages.WithLabelValues("created").Inc()
	} else {
		metrics.IngressMessages.WithLabelValues("duplicate").Inc()
		logrus.WithFields(logrus.Fields{
			"registration_id": tx.RegistrationID,
			"transaction_id":  tx.ID,
		}).Info("Duplicate registration event acknowledged")
	}
	return nil
}

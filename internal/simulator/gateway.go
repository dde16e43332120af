package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/sirupsen/logrus"
)

const DeclineReason = "declined by payment gateway"

// Result is the gateway answer for one charge.
type Result struct {
	Approved bool
	Ref      string
	Reason   string
}

// Gateway stands in for an external card processor: whole-unit amounts that
// are even are approved, odd ones declined.
type Gateway struct {
	Delay time.Duration
	Now   func() time.Time
}

func NewGateway(delay time.Duration) *Gateway {
	return &Gateway{Delay: delay, Now: time.Now}
}

func (g *Gateway) Charge(ctx context.Context, tx *models.Transaction) (Result, error) {
	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	logrus.WithFields(logrus.Fields{
		"transaction_id": tx.ID,
		"amount":         tx.Amount.String(),
	}).Info("Simulated gateway charge")

	if tx.Amount.IntPart()%2 != 0 {
		return Result{Reason: DeclineReason}, nil
	}
	return Result{
		Approved: true,
		Ref:      fmt.Sprintf("tx-%s-%d", tx.ID, g.Now().Unix()),
	}, nil
}

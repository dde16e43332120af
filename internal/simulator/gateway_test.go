package simulator_test

import (
	"context"
	"testing"
	"time"

	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/jeffleon2/ums-payment-service/internal/simulator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedGateway() *simulator.Gateway {
	g := simulator.NewGateway(0)
	g.Now = func() time.Time { return time.Unix(1700000000, 0) }
	return g
}

func TestCharge_EvenAmountApproved(t *testing.T) {
	tx := &models.Transaction{ID: "T1", Amount: decimal.RequireFromString("500.75")}

	res, err := fixedGateway().Charge(context.Background(), tx)

	require.NoError(t, err)
	assert.True(t, res.Approved)
	assert.Equal(t, "tx-T1-1700000000", res.Ref)
	assert.Empty(t, res.Reason)
}

func TestCharge_OddAmountDeclined(t *testing.T) {
	tx := &models.Transaction{ID: "T2", Amount: decimal.NewFromInt(301)}

	res, err := fixedGateway().Charge(context.Background(), tx)

	require.NoError(t, err)
	assert.False(t, res.Approved)
	assert.Equal(t, simulator.DeclineReason, res.Reason)
	assert.Empty(t, res.Ref)
}

func TestCharge_ContextCancelledDuringDelay(t *testing.T) {
	g := simulator.NewGateway(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Charge(ctx, &models.Transaction{ID: "T3", Amount: decimal.NewFromInt(2)})

	assert.ErrorIs(t, err, context.Canceled)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Reconciler republishes outcome events of terminal transactions whose first
// publish did not succeed. It never changes transaction status.
type Reconciler struct {
	Service   *TransactionService
	Interval  time.Duration
	BatchSize int
}

func NewReconciler(s *TransactionService, interval time.Duration, batchSize int) *Reconciler {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Reconciler{Service: s, Interval: interval, BatchSize: batchSize}
}

// Run sweeps every Interval until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := r.Sweep(ctx)
			if err != nil {
				logrus.Errorf("Reconciliation sweep error: %s", err.Error())
			}
			if n > 0 {
				logrus.Infof("Reconciliation sweep republished %d outcome(s)", n)
			}
		}
	}
}

// Sweep runs one reconciliation pass and returns how many outcomes were
// published.
func (r *Reconciler) Sweep(ctx context.Context) (int, error) {
	s := r.Service
	now := s.Now().UTC()

	listCtx, cancel := context.WithTimeout(ctx, s.timeout)
	candidates, err := s.Repo.ListUnpublished(listCtx, now, r.BatchSize)
	cancel()
	if err != nil {
		return 0, err
	}

	var errs []error
	published := 0
	for i := range candidates {
		tx := &candidates[i]
		ok, err := r.republish(ctx, tx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			published++
		}
	}
	return published, errors.Join(errs...)
}

// republish claims a fresh lease for tx, measured from the current time so a
// long batch never writes a lease that has already expired.
func (r *Reconciler) republish(ctx context.Context, tx *models.Transaction) (bool, error) {
	s := r.Service
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := s.Now().UTC()
	claimed, err := s.Repo.ClaimPublish(ctx, tx.ID, now, now.Add(s.publishLease))
	if err != nil {
		return false, err
	}
	if !claimed {
		return false, nil
	}
	if err := s.publishOutcome(ctx, tx, "sweep"); err != nil {
		return false, err
	}
	return true, nil
}

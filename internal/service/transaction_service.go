package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/jeffleon2/ums-payment-service/internal/metrics"
	"github.com/jeffleon2/ums-payment-service/internal/models"
	"github.com/jeffleon2/ums-payment-service/internal/models/dto"
	"github.com/jeffleon2/ums-payment-service/internal/simulator"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultListLimit applies when a listing asks for no limit.
	DefaultListLimit = 50
	// MaxListLimit caps every listing page.
	MaxListLimit = 200
	// DefaultRejectNote is stored as the failure reason of a reject without one.
	DefaultRejectNote = "rejected by admin"

	defaultTimeout      = 5 * time.Second
	defaultPublishLease = time.Minute
	defaultPageSize     = 100
)

// TransactionRepo defines the persistence operations the state machine relies on.
// Status changes must be conditional on the expected current status.
type TransactionRepo interface {
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error)
	Create(ctx context.Context, tx *models.Transaction) error
	UpdateStatus(ctx context.Context, id string, expected, next models.TransactionStatus, change models.StatusChange) (*models.Transaction, error)
	ListByStatus(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	ListPendingPage(ctx context.Context, asOf time.Time, after *models.PageCursor, limit int) ([]models.Transaction, error)
	ListUnpublished(ctx context.Context, now time.Time, limit int) ([]models.Transaction, error)
	ClaimPublish(ctx context.Context, id string, now, until time.Time) (bool, error)
	MarkPublished(ctx context.Context, id string, at time.Time) error
	RecordPublishFailure(ctx context.Context, id string, reason string) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, message interface{}) error
}

// Gateway settles a pending transaction against a payment processor.
type Gateway interface {
	Charge(ctx context.Context, tx *models.Transaction) (simulator.Result, error)
}

// Options tunes a TransactionService; zero values fall back to defaults.
type Options struct {
	OperationTimeout time.Duration
	PublishLease     time.Duration
	PageSize         int
}

// TransactionService is the payment state machine. Every transition is a
// compare-and-swap in the store; the outcome event is published after the
// transition is committed and never causes it to be undone.
type TransactionService struct {
	Repo      TransactionRepo
	Publisher Publisher
	Gateway   Gateway
	Now       func() time.Time

	timeout      time.Duration
	publishLease time.Duration
	pageSize     int
}

func NewTransactionService(repo TransactionRepo, publisher Publisher, gateway Gateway, opts Options) *TransactionService {
	if opts.OperationTimeout <= 0 {
		opts.OperationTimeout = defaultTimeout
	}
	if opts.PublishLease <= 0 {
		opts.PublishLease = defaultPublishLease
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	return &TransactionService{
		Repo:         repo,
		Publisher:    publisher,
		Gateway:      gateway,
		Now:          time.Now,
		timeout:      opts.OperationTimeout,
		publishLease: opts.PublishLease,
		pageSize:     opts.PageSize,
	}
}

// CreateFromPendingPayment records a PENDING transaction for the registration.
// Redelivered events return the existing transaction with created == false.
func (s *TransactionService) CreateFromPendingPayment(ctx context.Context, payment *dto.PendingPayment) (*models.Transaction, bool, error) {
	payment.Sanitize()
	if err := payment.Validate(); err != nil {
		return nil, false, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	existing, err := s.Repo.FindByIdempotencyKey(ctx, payment.RegistrationID)
	if err == nil {
		metrics.TransactionsCreated.WithLabelValues("idempotent").Inc()
		logrus.WithFields(logrus.Fields{
			"registration_id": payment.RegistrationID,
			"message_id":      payment.MessageID,
			"transaction_id":  existing.ID,
		}).Info("Registration already has a transaction")
		return existing, false, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, false, err
	}

	tx := payment.ToEntity()
	now := s.Now().UTC()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := s.Repo.Create(ctx, tx); err != nil {
		if !errors.Is(err, models.ErrDuplicateKey) {
			return nil, false, err
		}
		winner, err := s.Repo.FindByIdempotencyKey(ctx, payment.RegistrationID)
		if err != nil {
			return nil, false, fmt.Errorf("error reading concurrently created transaction: %w", err)
		}
		metrics.TransactionsCreated.WithLabelValues("idempotent").Inc()
		return winner, false, nil
	}

	metrics.TransactionsCreated.WithLabelValues("created").Inc()
	logrus.WithFields(logrus.Fields{
		"registration_id": tx.RegistrationID,
		"transaction_id":  tx.ID,
		"amount":          tx.Amount.String(),
		"currency":        tx.Currency,
	}).Info("Pending transaction created")
	return tx, true, nil
}

func (s *TransactionService) Get(ctx context.Context, id string) (*models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.Repo.GetByID(ctx, id)
}

func (s *TransactionService) ListByStatus(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.Repo.ListByStatus(ctx, filter)
}

// ListPending yields pending transactions created at or before the call,
// oldest first. Pages are fetched lazily and the sequence can be ranged over
// more than once.
func (s *TransactionService) ListPending(ctx context.Context) iter.Seq2[models.Transaction, error] {
	asOf := s.Now().UTC()
	return func(yield func(models.Transaction, error) bool) {
		var cursor *models.PageCursor
		for {
			page, err := s.pendingPage(ctx, asOf, cursor)
			if err != nil {
				yield(models.Transaction{}, err)
				return
			}
			for _, tx := range page {
				if !yield(tx, nil) {
					return
				}
			}
			if len(page) < s.pageSize {
				return
			}
			last := page[len(page)-1]
			cursor = &models.PageCursor{CreatedAt: last.CreatedAt, ID: last.ID}
		}
	}
}

func (s *TransactionService) pendingPage(ctx context.Context, asOf time.Time, cursor *models.PageCursor) ([]models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.Repo.ListPendingPage(ctx, asOf, cursor, s.pageSize)
}

// Approve confirms a pending transaction and announces PaymentConfirmed.
func (s *TransactionService) Approve(ctx context.Context, id string) (*models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	current, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}
	ref := fmt.Sprintf("tx-manual-%s-%d", id, s.Now().Unix())
	return s.transition(ctx, current, models.StatusSuccess, models.StatusChange{SettlementRef: ref}, "approve")
}

// Reject fails a pending transaction and announces PaymentFailed with reason.
func (s *TransactionService) Reject(ctx context.Context, id string, reason string) (*models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	current, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		reason = DefaultRejectNote
	}
	return s.transition(ctx, current, models.StatusFailed, models.StatusChange{FailureReason: reason}, "reject")
}

// Settle charges the transaction through the gateway and applies its answer.
func (s *TransactionService) Settle(ctx context.Context, id string) (*models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	current, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.Gateway.Charge(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("error charging transaction %s: %w", id, err)
	}
	if result.Approved {
		return s.transition(ctx, current, models.StatusSuccess, models.StatusChange{SettlementRef: result.Ref}, "settle")
	}
	return s.transition(ctx, current, models.StatusFailed, models.StatusChange{FailureReason: result.Reason}, "settle")
}

func (s *TransactionService) pending(ctx context.Context, id string) (*models.Transaction, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status.IsTerminal() {
		metrics.RejectedTransitions.WithLabelValues("already_terminal").Inc()
		return nil, fmt.Errorf("%w: transaction %s is %s", models.ErrAlreadyTerminal, id, current.Status)
	}
	return current, nil
}

func (s *TransactionService) transition(
	ctx context.Context,
	current *models.Transaction,
	next models.TransactionStatus,
	change models.StatusChange,
	trigger string,
) (*models.Transaction, error) {
	now := s.Now().UTC()
	change.At = now
	change.LeaseUntil = now.Add(s.publishLease)

	updated, err := s.Repo.UpdateStatus(ctx, current.ID, models.StatusPending, next, change)
	if errors.Is(err, models.ErrConcurrentModification) {
		latest, rerr := s.Repo.GetByID(ctx, current.ID)
		if rerr != nil {
			return nil, rerr
		}
		metrics.RejectedTransitions.WithLabelValues("concurrent_modification").Inc()
		if latest.Status.IsTerminal() {
			return nil, fmt.Errorf("%w: %w: transaction %s became %s", models.ErrAlreadyTerminal, err, current.ID, latest.Status)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	metrics.Transitions.WithLabelValues(string(next), trigger).Inc()
	if next == models.StatusSuccess {
		metrics.SettledAmounts.WithLabelValues(string(updated.Currency)).Observe(updated.Amount.InexactFloat64())
	}

	fields := logrus.Fields{
		"transaction_id":  updated.ID,
		"registration_id": updated.RegistrationID,
		"status":          updated.Status,
		"trigger":         trigger,
	}
	logrus.WithFields(fields).Info("Transaction reached terminal state")

	if err := s.publishOutcome(ctx, updated, "transition"); err != nil {
		logrus.WithFields(fields).Warnf("Outcome left for reconciliation: %s", err.Error())
	}
	return updated, nil
}

// publishOutcome sends the outcome event of a terminal transaction. The
// caller must hold the publish lease.
func (s *TransactionService) publishOutcome(ctx context.Context, tx *models.Transaction, source string) error {
	topic, envelope, ok := models.OutcomeFor(tx, s.Now().UTC())
	if !ok {
		return fmt.Errorf("%w: transaction %s is %s", models.ErrPublish, tx.ID, tx.Status)
	}

	publishErr := s.Publisher.Publish(ctx, topic, tx.ID, envelope)

	bookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if publishErr != nil {
		metrics.OutcomePublishes.WithLabelValues("failed", source).Inc()
		if err := s.Repo.RecordPublishFailure(bookCtx, tx.ID, publishErr.Error()); err != nil {
			logrus.WithField("transaction_id", tx.ID).Errorf("Error recording publish failure: %s", err.Error())
		}
		return fmt.Errorf("%w: %w", models.ErrPublish, publishErr)
	}

	metrics.OutcomePublishes.WithLabelValues("published", source).Inc()
	if err := s.Repo.MarkPublished(bookCtx, tx.ID, s.Now().UTC()); err != nil {
		return fmt.Errorf("error marking outcome of %s published: %w", tx.ID, err)
	}
	return nil
}

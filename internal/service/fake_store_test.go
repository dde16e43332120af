package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jeffleon2/ums-payment-service/internal/models"
)

// memoryStore mirrors the conditional-update semantics of the Postgres store.
type memoryStore struct {
	mu  sync.Mutex
	txs map[string]models.Transaction
}

func newMemoryStore(txs ...models.Transaction) *memoryStore {
	s := &memoryStore{txs: make(map[string]models.Transaction)}
	for _, tx := range txs {
		s.txs[tx.ID] = tx
	}
	return s
}

func (s *memoryStore) get(id string) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txs[id]
}

func (s *memoryStore) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.txs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &tx, nil
}

func (s *memoryStore) FindByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.txs {
		if tx.RegistrationID == key {
			return &tx, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *memoryStore) Create(ctx context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.txs {
		if existing.RegistrationID == tx.RegistrationID {
			return models.ErrDuplicateKey
		}
	}
	if tx.ID == "" {
		tx.ID = "T" + tx.RegistrationID
	}
	s.txs[tx.ID] = *tx
	return nil
}

func (s *memoryStore) UpdateStatus(ctx context.Context, id string, expected, next models.TransactionStatus, change models.StatusChange) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.txs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if tx.Status != expected {
		return nil, models.ErrConcurrentModification
	}
	tx.Status = next
	tx.UpdatedAt = change.At
	tx.SettlementRef = change.SettlementRef
	tx.FailureReason = change.FailureReason
	lease := change.LeaseUntil
	tx.PublishLeaseUntil = &lease
	s.txs[id] = tx
	return &tx, nil
}

func (s *memoryStore) ListByStatus(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (s *memoryStore) ListPendingPage(ctx context.Context, asOf time.Time, after *models.PageCursor, limit int) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Transaction
	for _, tx := range s.txs {
		if tx.Status != models.StatusPending || tx.CreatedAt.After(asOf) {
			continue
		}
		if after != nil && (tx.CreatedAt.Before(after.CreatedAt) || (tx.CreatedAt.Equal(after.CreatedAt) && tx.ID <= after.ID)) {
			continue
		}
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memoryStore) ListUnpublished(ctx context.Context, now time.Time, limit int) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Transaction
	for _, tx := range s.txs {
		if tx.Status.IsTerminal() && !tx.OutcomePublished && leaseFree(tx, now) {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memoryStore) ClaimPublish(ctx context.Context, id string, now, until time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.txs[id]
	if !ok || tx.OutcomePublished || !leaseFree(tx, now) {
		return false, nil
	}
	tx.PublishLeaseUntil = &until
	s.txs[id] = tx
	return true, nil
}

func (s *memoryStore) MarkPublished(ctx context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := s.txs[id]
	tx.OutcomePublished = true
	tx.OutcomePublishedAt = &at
	tx.PublishAttempts++
	tx.LastPublishError = ""
	tx.PublishLeaseUntil = nil
	s.txs[id] = tx
	return nil
}

func (s *memoryStore) RecordPublishFailure(ctx context.Context, id string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := s.txs[id]
	tx.PublishAttempts++
	tx.LastPublishError = reason
	tx.PublishLeaseUntil = nil
	s.txs[id] = tx
	return nil
}

func leaseFree(tx models.Transaction, now time.Time) bool {
	return tx.PublishLeaseUntil == nil || tx.PublishLeaseUntil.Before(now)
}

type sentEvent struct {
	topic    string
	key      string
	envelope models.OutcomeEnvelope
}

// recordingPublisher fails while failing is set and records everything else.
// onPublish, when set, runs after each recorded event.
type recordingPublisher struct {
	mu        sync.Mutex
	failing   bool
	sent      []sentEvent
	onPublish func(key string)
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, key string, message interface{}) error {
	p.mu.Lock()
	if p.failing {
		p.mu.Unlock()
		return errors.New("broker unavailable")
	}
	p.sent = append(p.sent, sentEvent{topic: topic, key: key, envelope: message.(models.OutcomeEnvelope)})
	hook := p.onPublish
	p.mu.Unlock()

	if hook != nil {
		hook(key)
	}
	return nil
}

func (p *recordingPublisher) countByKey() map[string]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]int)
	for _, e := range p.sent {
		out[e.key]++
	}
	return out
}

// manualClock is a goroutine-safe clock tests move by hand.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (p *recordingPublisher) events() []sentEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]sentEvent(nil), p.sent...)
}

func (p *recordingPublisher) setFailing(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failing = v
}

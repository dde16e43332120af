package models

import "errors"

var (
	// ErrMalformedEvent marks ingress payloads that can never be processed.
	ErrMalformedEvent = errors.New("malformed event")
	// ErrDuplicateKey is returned by the store when the idempotency key already exists.
	ErrDuplicateKey           = errors.New("duplicate key")
	ErrNotFound               = errors.New("transaction not found")
	ErrAlreadyTerminal        = errors.New("transaction already in terminal state")
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrPublish means the outcome was committed but the notification was not delivered.
	ErrPublish = errors.New("outcome publish failed")
)

package settlement

import (
	"errors"
	"fmt"

	"github.com/stashboxhq/stashpay/app/models"
)

// EventKind is the normalized kind of a provider notification. Only
// EventSucceeded triggers settlement.
type EventKind string

const (
	EventCreated   EventKind = "created"
	EventSucceeded EventKind = "succeeded"
	EventOther     EventKind = "other"
)

// PaymentEvent is a signature-verified provider notification.
type PaymentEvent struct {
	PaymentID       string
	AmountMinor     int64
	Kind            EventKind
	ProviderEventID string
	ProviderType    string
}

type Status string

const (
	// StatusIgnored means the event kind does not trigger settlement. The
	// HTTP layer still acknowledges it with 2xx.
	StatusIgnored Status = "ignored"
	// StatusAlreadySettled means a previous (or concurrent) delivery won;
	// nothing was written.
	StatusAlreadySettled Status = "already_settled"
	StatusSettled        Status = "settled"
)

// SettlementResult reports what Settle did. Payment and Account are only set
// on StatusSettled (Payment also on StatusAlreadySettled when it was loaded).
type SettlementResult struct {
	Status  Status
	Event   PaymentEvent
	Payment *models.Payment
	Account *models.Account
}

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedPayload = errors.New("malformed webhook payload")
	ErrPaymentNotFound  = errors.New("payment record not found")
)

// StorageError wraps record-store failures so the HTTP layer can map them to
// 500 and the provider retries via redelivery.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

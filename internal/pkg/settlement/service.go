package settlement

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Service settles verified payment events against the record store.
type Service struct {
	repo Repository
}

// NewService creates a settlement service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a settlement service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// Settle applies a verified payment event:
//
//	succeeded  -> look up the payment record, flip its settlement flag and
//	              credit the owning account's storage quota in one
//	              transaction. Redeliveries are a no-op (AlreadySettled).
//	anything else -> Ignored; the caller still acknowledges receipt.
//
// It returns ErrPaymentNotFound when no record matches the provider payment
// id, and *StorageError for any store failure.
func (s *Service) Settle(ctx context.Context, event PaymentEvent) (SettlementResult, error) {
	result := SettlementResult{Status: StatusIgnored, Event: event}
	if event.Kind != EventSucceeded {
		return result, nil
	}

	payment, err := s.repo.FindPaymentByProviderID(ctx, event.PaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, ErrPaymentNotFound
		}
		return result, &StorageError{Err: err}
	}
	result.Payment = payment

	if payment.Settled {
		result.Status = StatusAlreadySettled
		return result, nil
	}

	creditMB := s.QuotaForPlan(ctx, payment.PlanSize)

	account, settled, err := s.repo.SettleAndCredit(ctx, payment, creditMB)
	if err != nil {
		return result, &StorageError{Err: err}
	}
	if !settled {
		// Lost the conditional update to a concurrent delivery.
		result.Status = StatusAlreadySettled
		return result, nil
	}

	result.Status = StatusSettled
	result.Account = account
	return result, nil
}

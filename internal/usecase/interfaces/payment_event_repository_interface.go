package interfaces

import (
	"context"

	"payledger/internal/domain/entities"
)

// IPaymentEventRepository reads the append-only audit trail. Writes happen
// only through IPaymentRepository.ApplyMutation, in the same transaction as
// the ledger change; no update or delete operation exists.
type IPaymentEventRepository interface {
	// ListByPaymentID returns the events for a payment ordered by
	// created_at descending.
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.PaymentEvent, error)
}

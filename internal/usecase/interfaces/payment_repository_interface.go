package interfaces

import (
	"context"
	"errors"

	"payledger/internal/domain/entities"
	"payledger/internal/domain/money"
)

// ErrVersionConflict is returned by ApplyMutation when the payment row was
// modified between the read and the write (the version condition failed).
// Callers reload and retry.
var ErrVersionConflict = errors.New("payment version conflict")

// PaymentMutation is one atomic ledger change: the new payment state, the
// audit event describing it, and (optionally) an idempotency record. The
// repository must commit all parts in a single transaction conditioned on
// Payment.Version matching the stored version; the stored version is then
// incremented.
type PaymentMutation struct {
	Payment entities.Payment
	Event   entities.PaymentEvent

	// IdempotencyKey, when non-empty, is persisted alongside the mutation so
	// a repeated call with the same (payment id, key) can be answered from
	// the stored result.
	IdempotencyKey string
}

// PaymentFilter narrows and pages the payment listing.
type PaymentFilter struct {
	Provider  string
	Status    string
	OrderID   string
	IsTest    *bool
	MinAmount *money.Amount
	MaxAmount *money.Amount
	CreatedAfter  *int64 // unix seconds
	CreatedBefore *int64

	SortBy string // created_at | updated_at | amount_authorized | status
	Order  string // asc | desc
	Limit  int
	Offset int
}

// IPaymentRepository abstracts DynamoDB persistence for the Payment ledger.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)

	// ApplyMutation commits a ledger update and its audit event atomically,
	// returning ErrVersionConflict on a concurrent modification.
	ApplyMutation(ctx context.Context, m PaymentMutation) (entities.Payment, error)

	// GetIdempotentResult looks up the payment snapshot stored for a prior
	// call with the same key; found is false when the key is unused.
	GetIdempotentResult(ctx context.Context, paymentID, key string) (p entities.Payment, found bool, err error)

	// List returns the filtered page plus the total match count (for the
	// x-total-count response header).
	List(ctx context.Context, f PaymentFilter) ([]entities.Payment, int, error)
}

package entities

import (
	"time"

	"payledger/internal/domain/money"
)

// PaymentStatus tracks the ledger entry through the capture/refund flow.
//
// Terminal statuses: refunded, voided, failed. Once a payment reaches one
// of them no amount mutation changes the status again.
type PaymentStatus string

const (
	PaymentStatusRequiresAction    PaymentStatus = "requires_action"
	PaymentStatusAuthorized        PaymentStatus = "authorized"
	PaymentStatusCaptured          PaymentStatus = "captured"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusVoided            PaymentStatus = "voided"
	PaymentStatusFailed            PaymentStatus = "failed"
)

func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusRefunded || s == PaymentStatusVoided || s == PaymentStatusFailed
}

// Payment is the ledger entry persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants, held after every mutation:
//   - 0 <= AmountCaptured <= AmountAuthorized
//   - 0 <= AmountRefunded <= AmountCaptured
//
// AmountAuthorized is fixed at creation and never increased. Payments are
// never deleted; operators void instead.
//
// Version is the optimistic concurrency token: every mutation must write
// with a condition on the version it read, so racing writers cannot clobber
// each other's amount deltas.
type Payment struct {
	ID               string         `json:"id"`
	OrderID          string         `json:"order_id,omitempty"`
	Provider         string         `json:"provider"`
	Currency         string         `json:"currency"`
	AmountAuthorized money.Amount   `json:"amount_authorized"`
	AmountCaptured   money.Amount   `json:"amount_captured"`
	AmountRefunded   money.Amount   `json:"amount_refunded"`
	FeeAmount        money.Amount   `json:"fee_amount"`
	Status           PaymentStatus  `json:"status"`
	Reference        string         `json:"reference,omitempty"`
	TransactionID    string         `json:"transaction_id,omitempty"`
	IsTest           bool           `json:"is_test"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	Version          int64          `json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// DeriveStatus recomputes the status from the current amounts. It is a pure
// function of the amounts plus the prior status:
//   - terminal statuses are never overturned
//   - zero refunds leave the prior status untouched
//   - refunds below the captured total mean partially_refunded
//   - refunds covering a non-zero captured total mean refunded
func (p *Payment) DeriveStatus() {
	if p.Status.Terminal() {
		return
	}
	if p.AmountRefunded.IsZero() {
		return
	}
	if p.AmountRefunded.Cmp(p.AmountCaptured) < 0 {
		p.Status = PaymentStatusPartiallyRefunded
		return
	}
	if p.AmountCaptured.IsPositive() {
		p.Status = PaymentStatusRefunded
	}
}

// CaptureRemaining is the amount still available to capture.
func (p *Payment) CaptureRemaining() money.Amount {
	return p.AmountAuthorized.Sub(p.AmountCaptured)
}

// Refundable is the captured amount not yet refunded.
func (p *Payment) Refundable() money.Amount {
	return p.AmountCaptured.Sub(p.AmountRefunded)
}

package entities

import "time"

// PaymentEventType classifies a money-moving or reconciliation action.
type PaymentEventType string

const (
	PaymentEventCapture PaymentEventType = "capture"
	PaymentEventRefund  PaymentEventType = "refund"
	PaymentEventVoid    PaymentEventType = "void"
	PaymentEventSync    PaymentEventType = "sync"
)

// PaymentEvent is the append-only audit record of one operation applied to
// a Payment. Events are written in the same transaction as the ledger
// mutation they describe and are never updated or deleted.
//
// Storage model (DynamoDB):
//   - PK: payment_id
//   - SK: sort (created_at + id, queried descending for display)
//
// Raw keeps the inputs/outputs of the operation (applied amount, reason,
// requested amount) for reconciliation.
type PaymentEvent struct {
	ID        string           `json:"id"`
	PaymentID string           `json:"payment_id"`
	EventType PaymentEventType `json:"event_type"`
	Message   string           `json:"message"`
	Raw       map[string]any   `json:"raw,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

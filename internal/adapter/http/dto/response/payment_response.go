package response

import (
	"time"

	"payledger/internal/domain/entities"
	"payledger/internal/domain/money"
)

// PaymentResponse is the API view of a ledger entry. Amounts serialize as
// numbers reconstructed from the fixed-point value.
type PaymentResponse struct {
	ID               string         `json:"id"`
	OrderID          string         `json:"order_id,omitempty"`
	Provider         string         `json:"provider"`
	Currency         string         `json:"currency"`
	AmountAuthorized money.Amount   `json:"amount_authorized"`
	AmountCaptured   money.Amount   `json:"amount_captured"`
	AmountRefunded   money.Amount   `json:"amount_refunded"`
	FeeAmount        money.Amount   `json:"fee_amount"`
	Status           string         `json:"status"`
	Reference        string         `json:"reference,omitempty"`
	TransactionID    string         `json:"transaction_id,omitempty"`
	IsTest           bool           `json:"is_test"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		OrderID:          p.OrderID,
		Provider:         p.Provider,
		Currency:         p.Currency,
		AmountAuthorized: p.AmountAuthorized,
		AmountCaptured:   p.AmountCaptured,
		AmountRefunded:   p.AmountRefunded,
		FeeAmount:        p.FeeAmount,
		Status:           string(p.Status),
		Reference:        p.Reference,
		TransactionID:    p.TransactionID,
		IsTest:           p.IsTest,
		Metadata:         p.Metadata,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// PaymentEventResponse is the API view of one audit record.
type PaymentEventResponse struct {
	ID        string         `json:"id"`
	PaymentID string         `json:"payment_id"`
	EventType string         `json:"event_type"`
	Message   string         `json:"message"`
	Raw       map[string]any `json:"raw,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromPaymentEvent(e entities.PaymentEvent) PaymentEventResponse {
	return PaymentEventResponse{
		ID:        e.ID,
		PaymentID: e.PaymentID,
		EventType: string(e.EventType),
		Message:   e.Message,
		Raw:       e.Raw,
		CreatedAt: e.CreatedAt,
	}
}

func FromPaymentEvents(events []entities.PaymentEvent) []PaymentEventResponse {
	out := make([]PaymentEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromPaymentEvent(e))
	}
	return out
}

package request

import (
	"strings"
	"time"

	"payledger/internal/domain/money"
	"payledger/internal/usecase/interfaces"
)

// AuthorizePaymentRequest creates a ledger entry for a known authorization.
type AuthorizePaymentRequest struct {
	OrderID   string         `json:"order_id"`
	Provider  string         `json:"provider" binding:"required"`
	Currency  string         `json:"currency" binding:"required"`
	Amount    money.Amount   `json:"amount"`
	FeeAmount money.Amount   `json:"fee_amount"`
	Reference string         `json:"reference"`
	IsTest    bool           `json:"is_test"`
	Metadata  map[string]any `json:"metadata"`
}

// CapturePaymentRequest drives a capture. A missing amount captures the
// full remaining authorization.
type CapturePaymentRequest struct {
	Amount         *money.Amount `json:"amount"`
	IdempotencyKey string        `json:"idempotency_key"`
}

// RefundPaymentRequest drives a refund. A missing amount refunds the full
// refundable remainder.
type RefundPaymentRequest struct {
	Amount *money.Amount `json:"amount"`
	Reason string        `json:"reason"`
}

// VoidPaymentRequest cancels a payment outside the capture/refund flow.
type VoidPaymentRequest struct {
	Reason string `json:"reason"`
}

// PaymentListQuery is the GET /payments query surface. Date bounds are
// RFC3339 timestamps; malformed bounds are ignored rather than rejected.
type PaymentListQuery struct {
	Provider      string `form:"provider"`
	Status        string `form:"status"`
	OrderID       string `form:"order_id"`
	IsTest        *bool  `form:"is_test"`
	MinAmount     string `form:"min_amount"`
	MaxAmount     string `form:"max_amount"`
	CreatedAfter  string `form:"created_after"`
	CreatedBefore string `form:"created_before"`
	SortBy        string `form:"sort"`
	Order         string `form:"order"`
	Limit         int    `form:"limit"`
	Offset        int    `form:"offset"`
}

func (q PaymentListQuery) ToFilter() interfaces.PaymentFilter {
	f := interfaces.PaymentFilter{
		Provider: strings.TrimSpace(q.Provider),
		Status:   strings.TrimSpace(q.Status),
		OrderID:  strings.TrimSpace(q.OrderID),
		IsTest:   q.IsTest,
		SortBy:   strings.TrimSpace(q.SortBy),
		Order:    strings.TrimSpace(q.Order),
		Limit:    q.Limit,
		Offset:   q.Offset,
	}

	if s := strings.TrimSpace(q.MinAmount); s != "" {
		a := money.Parse(s)
		f.MinAmount = &a
	}
	if s := strings.TrimSpace(q.MaxAmount); s != "" {
		a := money.Parse(s)
		f.MaxAmount = &a
	}
	if ts := parseTimeBound(q.CreatedAfter); ts != nil {
		f.CreatedAfter = ts
	}
	if ts := parseTimeBound(q.CreatedBefore); ts != nil {
		f.CreatedBefore = ts
	}
	return f
}

func parseTimeBound(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	unix := t.Unix()
	return &unix
}

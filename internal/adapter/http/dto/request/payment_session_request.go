package request

import (
	"strings"

	"payledger/internal/domain/money"
	"payledger/internal/usecase/interfaces"
)

// CreateSessionRequest starts a provider handshake before authorization.
type CreateSessionRequest struct {
	ProviderKey string         `json:"provider_key" binding:"required"`
	OrderID     string         `json:"order_id"`
	Amount      money.Amount   `json:"amount"`
	Currency    string         `json:"currency" binding:"required"`
	Extra       map[string]any `json:"extra"`
}

// SessionListQuery is the GET /payment_sessions query surface. The `q`
// parameter free-text matches id, order id and provider key.
type SessionListQuery struct {
	ProviderKey string `form:"provider_key"`
	OrderID     string `form:"order_id"`
	Status      string `form:"status"`
	Search      string `form:"q"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

func (q SessionListQuery) ToFilter() interfaces.SessionFilter {
	return interfaces.SessionFilter{
		ProviderKey: strings.TrimSpace(q.ProviderKey),
		OrderID:     strings.TrimSpace(q.OrderID),
		Status:      strings.TrimSpace(q.Status),
		Search:      strings.TrimSpace(q.Search),
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
}

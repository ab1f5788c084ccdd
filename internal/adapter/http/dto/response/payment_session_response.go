package response

import (
	"time"

	"payledger/internal/domain/entities"
	"payledger/internal/domain/money"
	"payledger/internal/usecase"
)

// PaymentSessionResponse is the API view of a session, including the
// provider-issued client credentials.
type PaymentSessionResponse struct {
	ID           string         `json:"id"`
	ProviderKey  string         `json:"provider_key"`
	OrderID      string         `json:"order_id,omitempty"`
	Amount       money.Amount   `json:"amount"`
	Currency     string         `json:"currency"`
	Status       string         `json:"status"`
	ClientSecret string         `json:"client_secret,omitempty"`
	IframeURL    string         `json:"iframe_url,omitempty"`
	RedirectURL  string         `json:"redirect_url,omitempty"`
	Extra        map[string]any `json:"extra,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func FromPaymentSession(s entities.PaymentSession) PaymentSessionResponse {
	return PaymentSessionResponse{
		ID:           s.ID,
		ProviderKey:  s.ProviderKey,
		OrderID:      s.OrderID,
		Amount:       s.Amount,
		Currency:     s.Currency,
		Status:       string(s.Status),
		ClientSecret: s.ClientSecret,
		IframeURL:    s.IframeURL,
		RedirectURL:  s.RedirectURL,
		Extra:        s.Extra,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func FromPaymentSessions(sessions []entities.PaymentSession) []PaymentSessionResponse {
	out := make([]PaymentSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, FromPaymentSession(s))
	}
	return out
}

// SessionActionResponse is the body returned by capture/cancel/sync calls.
type SessionActionResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
}

func FromSessionResult(r usecase.SessionResult) SessionActionResponse {
	return SessionActionResponse{Success: r.Success, Status: string(r.Status)}
}

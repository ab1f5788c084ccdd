package entities

import (
	"time"

	"payledger/internal/domain/money"
)

// SessionStatus represents the lifecycle of a payment session.
//
// A session is the provider handshake object created before any funds are
// authorized. captured and cancelled are terminal: a terminal session only
// accepts metadata changes.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusCaptured  SessionStatus = "captured"
	SessionStatusCancelled SessionStatus = "cancelled"
)

func (s SessionStatus) Terminal() bool {
	return s == SessionStatusCaptured || s == SessionStatusCancelled
}

// PaymentSession is the pre-authorization object persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ClientSecret/IframeURL/RedirectURL are provider-issued opaque strings
// handed to the client to run the provider's payment flow. The session does
// not track authorized/captured/refunded sub-amounts; that is the Payment
// ledger entry's job.
type PaymentSession struct {
	ID           string         `json:"id"`
	ProviderKey  string         `json:"provider_key"`
	OrderID      string         `json:"order_id,omitempty"`
	Amount       money.Amount   `json:"amount"`
	Currency     string         `json:"currency"`
	Status       SessionStatus  `json:"status"`
	ClientSecret string         `json:"client_secret,omitempty"`
	IframeURL    string         `json:"iframe_url,omitempty"`
	RedirectURL  string         `json:"redirect_url,omitempty"`
	Extra        map[string]any `json:"extra,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

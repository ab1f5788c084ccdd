package interfaces

import (
	"context"

	"payledger/internal/domain/entities"
	"payledger/internal/domain/money"
)

// SessionCredentials are the provider-issued opaque strings the client uses
// to run the provider's payment flow.
type SessionCredentials struct {
	ClientSecret string
	IframeURL    string
	RedirectURL  string
}

// IProviderGateway abstracts external payment providers.
//
// No real provider is integrated; the sandbox implementation issues local
// credentials and echoes stored state. Real reconciliation plugs in here.
type IProviderGateway interface {
	CreateSession(ctx context.Context, providerKey, sessionID string, amount money.Amount, currency string) (SessionCredentials, error)

	// SyncSession fetches the provider's view of a session's status.
	SyncSession(ctx context.Context, s entities.PaymentSession) (entities.SessionStatus, error)

	// SyncPayment fetches the provider's view of a payment, returning the
	// raw reconciliation payload recorded on the sync event.
	SyncPayment(ctx context.Context, p entities.Payment) (map[string]any, error)
}

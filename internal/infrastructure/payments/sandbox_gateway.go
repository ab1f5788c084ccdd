package payments

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"

	"payledger/internal/domain/entities"
	"payledger/internal/domain/money"
	"payledger/internal/usecase/interfaces"
)

// SandboxGateway is the local stand-in for a real payment provider. It
// issues session credentials and echoes stored state on sync. Real provider
// reconciliation replaces this behind IProviderGateway.
//
// Supported env vars:
//   - PROVIDER_BASE_URL (default: https://sandbox.pay.local)
type SandboxGateway struct {
	baseURL string
}

var _ interfaces.IProviderGateway = (*SandboxGateway)(nil)

func NewSandboxGateway() *SandboxGateway {
	baseURL := strings.TrimRight(os.Getenv("PROVIDER_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = "https://sandbox.pay.local"
	}
	log.Printf("[payment][gateway] sandbox gateway initialized base_url=%s", baseURL)
	return &SandboxGateway{baseURL: baseURL}
}

func (g *SandboxGateway) CreateSession(_ context.Context, providerKey, sessionID string, amount money.Amount, currency string) (interfaces.SessionCredentials, error) {
	secret, err := randomToken()
	if err != nil {
		return interfaces.SessionCredentials{}, err
	}
	log.Printf("[payment][gateway] sandbox session issued provider_key=%s session_id=%s amount=%s %s", providerKey, sessionID, amount, currency)
	return interfaces.SessionCredentials{
		ClientSecret: "sec_" + secret,
		IframeURL:    fmt.Sprintf("%s/%s/iframe/%s", g.baseURL, providerKey, sessionID),
		RedirectURL:  fmt.Sprintf("%s/%s/redirect/%s", g.baseURL, providerKey, sessionID),
	}, nil
}

// SyncSession has no remote state to consult; the stored status is already
// authoritative in the sandbox.
func (g *SandboxGateway) SyncSession(_ context.Context, s entities.PaymentSession) (entities.SessionStatus, error) {
	return s.Status, nil
}

func (g *SandboxGateway) SyncPayment(_ context.Context, p entities.Payment) (map[string]any, error) {
	return map[string]any{"ok": true, "provider": p.Provider}, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

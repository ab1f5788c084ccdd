package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"payledger/internal/domain/entities"
	"payledger/internal/domain/money"
	"payledger/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound    = errors.New("payment session not found")
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrInvalidProviderKey = errors.New("invalid provider key")
)

// CreateSessionInput starts the provider handshake for a purchase.
type CreateSessionInput struct {
	ProviderKey string
	OrderID     string
	Amount      money.Amount
	Currency    string
	Extra       map[string]any
}

// SessionResult is the outcome of a capture/cancel/sync call.
type SessionResult struct {
	Success bool
	Status  entities.SessionStatus
}

// IPaymentSessionUseCase exposes the pre-authorization session operations.
//
// Capture and Cancel on a session already in a terminal state are no-ops:
// the current status is returned and no side effects re-run.
type IPaymentSessionUseCase interface {
	Create(ctx context.Context, in CreateSessionInput) (entities.PaymentSession, error)
	Capture(ctx context.Context, id string) (SessionResult, error)
	Cancel(ctx context.Context, id string) (SessionResult, error)
	Sync(ctx context.Context, id string) (SessionResult, error)
	GetByID(ctx context.Context, id string) (entities.PaymentSession, error)
	List(ctx context.Context, f interfaces.SessionFilter) ([]entities.PaymentSession, int, error)
}

type PaymentSessionUseCase struct {
	repo    interfaces.IPaymentSessionRepository
	gateway interfaces.IProviderGateway
}

var _ IPaymentSessionUseCase = (*PaymentSessionUseCase)(nil)

func NewPaymentSessionUseCase(repo interfaces.IPaymentSessionRepository, gateway interfaces.IProviderGateway) *PaymentSessionUseCase {
	return &PaymentSessionUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentSessionUseCase) Create(ctx context.Context, in CreateSessionInput) (entities.PaymentSession, error) {
	in.ProviderKey = strings.TrimSpace(in.ProviderKey)
	in.Currency = strings.TrimSpace(in.Currency)
	if in.ProviderKey == "" {
		return entities.PaymentSession{}, ErrInvalidProviderKey
	}
	if in.Currency == "" {
		return entities.PaymentSession{}, ErrInvalidCurrency
	}
	if !in.Amount.IsPositive() {
		return entities.PaymentSession{}, ErrInvalidAmount
	}

	now := time.Now().UTC()
	s := entities.PaymentSession{
		ID:          uuid.NewString(),
		ProviderKey: in.ProviderKey,
		OrderID:     strings.TrimSpace(in.OrderID),
		Amount:      in.Amount,
		Currency:    in.Currency,
		Status:      entities.SessionStatusPending,
		Extra:       in.Extra,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if u.gateway != nil {
		creds, err := u.gateway.CreateSession(ctx, s.ProviderKey, s.ID, s.Amount, s.Currency)
		if err != nil {
			log.Printf("[session][usecase] provider session failed provider_key=%s err=%v", s.ProviderKey, err)
			return entities.PaymentSession{}, err
		}
		s.ClientSecret = creds.ClientSecret
		s.IframeURL = creds.IframeURL
		s.RedirectURL = creds.RedirectURL
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[session][usecase] create failed provider_key=%s err=%v", s.ProviderKey, err)
		return entities.PaymentSession{}, err
	}
	log.Printf("[session][usecase] create success session_id=%s provider_key=%s amount=%s", created.ID, created.ProviderKey, created.Amount)
	return created, nil
}

func (u *PaymentSessionUseCase) Capture(ctx context.Context, id string) (SessionResult, error) {
	return u.transition(ctx, id, entities.SessionStatusCaptured)
}

func (u *PaymentSessionUseCase) Cancel(ctx context.Context, id string) (SessionResult, error) {
	return u.transition(ctx, id, entities.SessionStatusCancelled)
}

func (u *PaymentSessionUseCase) transition(ctx context.Context, id string, status entities.SessionStatus) (SessionResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SessionResult{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return SessionResult{}, err
	}
	if s.ID == "" {
		return SessionResult{}, ErrSessionNotFound
	}

	// Terminal sessions stay as they are; a second capture/cancel call must
	// not re-run side effects.
	if s.Status.Terminal() {
		log.Printf("[session][usecase] transition no-op session_id=%s status=%s requested=%s", s.ID, s.Status, status)
		return SessionResult{Success: true, Status: s.Status}, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Printf("[session][usecase] transition failed session_id=%s status=%s err=%v", id, status, err)
		return SessionResult{}, err
	}
	log.Printf("[session][usecase] transition success session_id=%s status=%s", updated.ID, updated.Status)
	return SessionResult{Success: true, Status: updated.Status}, nil
}

// Sync refreshes the session status from the provider. The sandbox gateway
// echoes the stored status, so this is a read-only refresh.
func (u *PaymentSessionUseCase) Sync(ctx context.Context, id string) (SessionResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SessionResult{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return SessionResult{}, err
	}
	if s.ID == "" {
		return SessionResult{}, ErrSessionNotFound
	}

	status := s.Status
	if u.gateway != nil {
		providerStatus, err := u.gateway.SyncSession(ctx, s)
		if err != nil {
			log.Printf("[session][usecase] provider sync failed session_id=%s err=%v", id, err)
			return SessionResult{}, err
		}
		if providerStatus != "" && providerStatus != s.Status {
			updated, err := u.repo.UpdateStatus(ctx, id, providerStatus)
			if err != nil {
				return SessionResult{}, err
			}
			status = updated.Status
		}
	}
	log.Printf("[session][usecase] sync success session_id=%s status=%s", id, status)
	return SessionResult{Success: true, Status: status}, nil
}

func (u *PaymentSessionUseCase) GetByID(ctx context.Context, id string) (entities.PaymentSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentSession{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if s.ID == "" {
		return entities.PaymentSession{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *PaymentSessionUseCase) List(ctx context.Context, f interfaces.SessionFilter) ([]entities.PaymentSession, int, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return u.repo.List(ctx, f)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"payledger/internal/domain/entities"
	"payledger/internal/domain/money"
	"payledger/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrInvalidPaymentID = errors.New("invalid payment id")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidProvider  = errors.New("invalid provider")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrPaymentConflict  = errors.New("payment modified concurrently")
)

// mutationAttempts bounds the reload-and-retry loop on version conflicts.
// Past this the conflict surfaces to the caller as ErrPaymentConflict.
const mutationAttempts = 3

// AuthorizeInput creates a ledger entry once a funds authorization is known.
type AuthorizeInput struct {
	OrderID   string
	Provider  string
	Currency  string
	Amount    money.Amount
	FeeAmount money.Amount
	Reference string
	IsTest    bool
	Metadata  map[string]any
}

// CaptureInput drives the capture operation. A nil Amount captures whatever
// remains of the authorization (the capture-all default).
type CaptureInput struct {
	Amount         *money.Amount
	IdempotencyKey string
}

// RefundInput drives the refund operation. A nil Amount refunds the full
// refundable remainder.
type RefundInput struct {
	Amount *money.Amount
	Reason string
}

// IPaymentUseCase exposes the ledger operations.
//
// Capture and Refund clamp rather than reject: requesting more than remains
// applies exactly the remainder. A zero delta is a silent no-op that still
// appends its audit event.
type IPaymentUseCase interface {
	Authorize(ctx context.Context, in AuthorizeInput) (entities.Payment, error)
	Capture(ctx context.Context, id string, in CaptureInput) (entities.Payment, error)
	Refund(ctx context.Context, id string, in RefundInput) (entities.Payment, error)
	Void(ctx context.Context, id string, reason string) (entities.Payment, error)
	Sync(ctx context.Context, id string) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context, f interfaces.PaymentFilter) ([]entities.Payment, int, error)
	ListEvents(ctx context.Context, paymentID string) ([]entities.PaymentEvent, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	eventRepo interfaces.IPaymentEventRepository
	gateway   interfaces.IProviderGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, eventRepo interfaces.IPaymentEventRepository, gateway interfaces.IProviderGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, eventRepo: eventRepo, gateway: gateway}
}

func (u *PaymentUseCase) Authorize(ctx context.Context, in AuthorizeInput) (entities.Payment, error) {
	in.Provider = strings.TrimSpace(in.Provider)
	in.Currency = strings.TrimSpace(in.Currency)
	if in.Provider == "" {
		return entities.Payment{}, ErrInvalidProvider
	}
	if in.Currency == "" {
		return entities.Payment{}, ErrInvalidCurrency
	}
	if !in.Amount.IsPositive() {
		return entities.Payment{}, ErrInvalidAmount
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:               uuid.NewString(),
		OrderID:          strings.TrimSpace(in.OrderID),
		Provider:         in.Provider,
		Currency:         in.Currency,
		AmountAuthorized: in.Amount,
		AmountCaptured:   money.Zero,
		AmountRefunded:   money.Zero,
		FeeAmount:        in.FeeAmount,
		Status:           entities.PaymentStatusAuthorized,
		Reference:        strings.TrimSpace(in.Reference),
		IsTest:           in.IsTest,
		Metadata:         in.Metadata,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] authorize create failed order_id=%s err=%v", in.OrderID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] authorize success payment_id=%s amount=%s currency=%s", created.ID, created.AmountAuthorized, created.Currency)
	return created, nil
}

func (u *PaymentUseCase) Capture(ctx context.Context, id string, in CaptureInput) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if in.Amount != nil && !in.Amount.IsPositive() {
		return entities.Payment{}, ErrInvalidAmount
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key != "" {
		prior, found, err := u.repo.GetIdempotentResult(ctx, id, key)
		if err != nil {
			return entities.Payment{}, err
		}
		if found {
			log.Printf("[payment][usecase] capture replay payment_id=%s idempotency_key=%s", id, key)
			return prior, nil
		}
	}

	return u.mutate(ctx, id, func(p *entities.Payment) entities.PaymentEvent {
		remaining := p.CaptureRemaining()
		applied := remaining
		if in.Amount != nil {
			applied = money.Min(*in.Amount, remaining)
		}
		if applied.IsNegative() {
			applied = money.Zero
		}

		p.AmountCaptured = p.AmountCaptured.Add(applied)
		if !p.Status.Terminal() && p.AmountCaptured.Cmp(p.AmountAuthorized) >= 0 {
			p.Status = entities.PaymentStatusCaptured
		}
		p.DeriveStatus()

		raw := map[string]any{"applied": applied.String(), "remaining_before": remaining.String()}
		if in.Amount != nil {
			raw["requested"] = in.Amount.String()
		}
		return entities.PaymentEvent{
			EventType: entities.PaymentEventCapture,
			Message:   fmt.Sprintf("captured %s %s", applied, p.Currency),
			Raw:       raw,
		}
	}, key)
}

func (u *PaymentUseCase) Refund(ctx context.Context, id string, in RefundInput) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if in.Amount != nil && !in.Amount.IsPositive() {
		return entities.Payment{}, ErrInvalidAmount
	}

	return u.mutate(ctx, id, func(p *entities.Payment) entities.PaymentEvent {
		refundable := p.Refundable()
		applied := refundable
		if in.Amount != nil {
			applied = money.Min(*in.Amount, refundable)
		}
		if applied.IsNegative() {
			applied = money.Zero
		}

		p.AmountRefunded = p.AmountRefunded.Add(applied)
		p.DeriveStatus()

		raw := map[string]any{"applied": applied.String(), "refundable_before": refundable.String()}
		if in.Amount != nil {
			raw["requested"] = in.Amount.String()
		}
		if reason := strings.TrimSpace(in.Reason); reason != "" {
			raw["reason"] = reason
		}
		return entities.PaymentEvent{
			EventType: entities.PaymentEventRefund,
			Message:   fmt.Sprintf("refunded %s %s", applied, p.Currency),
			Raw:       raw,
		}
	}, "")
}

// Void marks the payment voided regardless of captured amounts. The
// permissive post-capture void matches the historical behavior operators
// rely on; a captured payment can still be voided rather than refunded.
func (u *PaymentUseCase) Void(ctx context.Context, id string, reason string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	return u.mutate(ctx, id, func(p *entities.Payment) entities.PaymentEvent {
		p.Status = entities.PaymentStatusVoided

		raw := map[string]any{}
		if reason = strings.TrimSpace(reason); reason != "" {
			raw["reason"] = reason
		}
		return entities.PaymentEvent{
			EventType: entities.PaymentEventVoid,
			Message:   "payment voided",
			Raw:       raw,
		}
	}, "")
}

// Sync appends a reconciliation event without touching amounts or status.
// The sandbox gateway returns a fixed {ok:true} payload; real provider
// reconciliation plugs in through IProviderGateway.
func (u *PaymentUseCase) Sync(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	return u.mutate(ctx, id, func(p *entities.Payment) entities.PaymentEvent {
		raw := map[string]any{"ok": true}
		if u.gateway != nil {
			if providerRaw, err := u.gateway.SyncPayment(ctx, *p); err != nil {
				log.Printf("[payment][usecase] provider sync failed payment_id=%s err=%v", p.ID, err)
			} else if providerRaw != nil {
				raw = providerRaw
			}
		}
		return entities.PaymentEvent{
			EventType: entities.PaymentEventSync,
			Message:   "provider sync",
			Raw:       raw,
		}
	}, "")
}

// mutate runs the read-compute-write cycle under optimistic concurrency:
// load the payment, let apply rewrite amounts/status and describe the audit
// event, then commit both through ApplyMutation conditioned on the loaded
// version. A version conflict reloads and recomputes.
func (u *PaymentUseCase) mutate(ctx context.Context, id string, apply func(p *entities.Payment) entities.PaymentEvent, idempotencyKey string) (entities.Payment, error) {
	for attempt := 0; attempt < mutationAttempts; attempt++ {
		p, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Payment{}, err
		}
		if p.ID == "" {
			return entities.Payment{}, ErrPaymentNotFound
		}

		now := time.Now().UTC()
		event := apply(&p)
		event.ID = uuid.NewString()
		event.PaymentID = p.ID
		event.CreatedAt = now
		if event.EventType != entities.PaymentEventSync {
			p.UpdatedAt = now
		}

		updated, err := u.repo.ApplyMutation(ctx, interfaces.PaymentMutation{
			Payment:        p,
			Event:          event,
			IdempotencyKey: idempotencyKey,
		})
		if err != nil {
			if errors.Is(err, interfaces.ErrVersionConflict) {
				log.Printf("[payment][usecase] version conflict payment_id=%s attempt=%d", id, attempt+1)
				continue
			}
			log.Printf("[payment][usecase] mutation failed payment_id=%s event_type=%s err=%v", id, event.EventType, err)
			return entities.Payment{}, err
		}
		log.Printf("[payment][usecase] %s success payment_id=%s status=%s captured=%s refunded=%s",
			event.EventType, updated.ID, updated.Status, updated.AmountCaptured, updated.AmountRefunded)
		return updated, nil
	}
	return entities.Payment{}, ErrPaymentConflict
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) List(ctx context.Context, f interfaces.PaymentFilter) ([]entities.Payment, int, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return u.repo.List(ctx, f)
}

func (u *PaymentUseCase) ListEvents(ctx context.Context, paymentID string) ([]entities.PaymentEvent, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, ErrPaymentNotFound
	}
	return u.eventRepo.ListByPaymentID(ctx, paymentID)
}

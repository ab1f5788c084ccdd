package interfaces

import (
	"context"

	"payledger/internal/domain/entities"
)

// SessionFilter narrows the session listing. Search is a free-text match
// over id, order id and provider key.
type SessionFilter struct {
	ProviderKey string
	OrderID     string
	Status      string
	Search      string

	Limit  int
	Offset int
}

// IPaymentSessionRepository abstracts DynamoDB persistence for
// PaymentSession.
type IPaymentSessionRepository interface {
	Create(ctx context.Context, s entities.PaymentSession) (entities.PaymentSession, error)
	GetByID(ctx context.Context, id string) (entities.PaymentSession, error)
	UpdateStatus(ctx context.Context, id string, status entities.SessionStatus) (entities.PaymentSession, error)
	List(ctx context.Context, f SessionFilter) ([]entities.PaymentSession, int, error)
}

package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	request "payledger/internal/adapter/http/dto/request"
	response "payledger/internal/adapter/http/dto/response"
	"payledger/internal/usecase"
	"payledger/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)

// PaymentSessionHandler handles HTTP requests for payment sessions.
type PaymentSessionHandler struct {
	usecase usecase.IPaymentSessionUseCase
}

func NewPaymentSessionHandler(uc usecase.IPaymentSessionUseCase) *PaymentSessionHandler {
	return &PaymentSessionHandler{usecase: uc}
}

// CreateSession starts the provider handshake for a purchase.
func (h *PaymentSessionHandler) CreateSession(c *gin.Context) {
	var payload request.CreateSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Create(c.Request.Context(), usecase.CreateSessionInput{
		ProviderKey: payload.ProviderKey,
		OrderID:     payload.OrderID,
		Amount:      payload.Amount,
		Currency:    payload.Currency,
		Extra:       payload.Extra,
	})
	if err != nil {
		log.Printf("[session][handler] create failed provider_key=%s err=%v", payload.ProviderKey, err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentSession(s))
}

func (h *PaymentSessionHandler) CaptureSession(c *gin.Context) {
	h.runSessionAction(c, "capture", h.usecase.Capture)
}

func (h *PaymentSessionHandler) CancelSession(c *gin.Context) {
	h.runSessionAction(c, "cancel", h.usecase.Cancel)
}

func (h *PaymentSessionHandler) SyncSession(c *gin.Context) {
	h.runSessionAction(c, "sync", h.usecase.Sync)
}

func (h *PaymentSessionHandler) runSessionAction(
	c *gin.Context,
	action string,
	run func(ctx context.Context, id string) (usecase.SessionResult, error),
) {
	id := c.Param("id")

	res, err := run(c.Request.Context(), id)
	if err != nil {
		log.Printf("[session][handler] %s failed session_id=%s err=%v", action, id, err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

// GetSession returns one session.
func (h *PaymentSessionHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentSession(s))
}

// ListSessions returns the filtered session page with a total count header.
func (h *PaymentSessionHandler) ListSessions(c *gin.Context) {
	var query request.SessionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	sessions, total, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		log.Printf("[session][handler] list failed err=%v", err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("x-total-count", strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromPaymentSessions(sessions))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidProviderKey),
		errors.Is(err, usecase.ErrInvalidCurrency),
		errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Payment session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

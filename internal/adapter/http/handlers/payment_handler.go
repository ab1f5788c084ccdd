package handlers

import (
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

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for the payment ledger.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// AuthorizePayment creates a ledger entry for a known funds authorization.
func (h *PaymentHandler) AuthorizePayment(c *gin.Context) {
	var payload request.AuthorizePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Authorize(c.Request.Context(), usecase.AuthorizeInput{
		OrderID:   payload.OrderID,
		Provider:  payload.Provider,
		Currency:  payload.Currency,
		Amount:    payload.Amount,
		FeeAmount: payload.FeeAmount,
		Reference: payload.Reference,
		IsTest:    payload.IsTest,
		Metadata:  payload.Metadata,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(p))
}

// CapturePayment converts some or all of the authorization into a charge.
// Omitting the amount captures whatever remains.
func (h *PaymentHandler) CapturePayment(c *gin.Context) {
	id := c.Param("id")

	payload, ok := bindOptionalBody[request.CapturePaymentRequest](c)
	if !ok {
		return
	}

	p, err := h.usecase.Capture(c.Request.Context(), id, usecase.CaptureInput{
		Amount:         payload.Amount,
		IdempotencyKey: payload.IdempotencyKey,
	})
	if err != nil {
		log.Printf("[payment][handler] capture failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// RefundPayment returns some or all of the captured amount to the payer.
// Omitting the amount refunds the full refundable remainder.
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	id := c.Param("id")

	payload, ok := bindOptionalBody[request.RefundPaymentRequest](c)
	if !ok {
		return
	}

	p, err := h.usecase.Refund(c.Request.Context(), id, usecase.RefundInput{
		Amount: payload.Amount,
		Reason: payload.Reason,
	})
	if err != nil {
		log.Printf("[payment][handler] refund failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// VoidPayment marks the payment voided; amounts stay untouched.
func (h *PaymentHandler) VoidPayment(c *gin.Context) {
	id := c.Param("id")

	payload, ok := bindOptionalBody[request.VoidPaymentRequest](c)
	if !ok {
		return
	}

	p, err := h.usecase.Void(c.Request.Context(), id, payload.Reason)
	if err != nil {
		log.Printf("[payment][handler] void failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// SyncPayment appends a reconciliation event and returns the payment.
func (h *PaymentHandler) SyncPayment(c *gin.Context) {
	id := c.Param("id")

	p, err := h.usecase.Sync(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] sync failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// GetPayment returns one ledger entry.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ListPayments returns the filtered ledger page; the total match count goes
// out in the x-total-count header.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var query request.PaymentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payments, total, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		log.Printf("[payment][handler] list failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("x-total-count", strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// ListPaymentEvents returns the audit trail, newest first.
func (h *PaymentHandler) ListPaymentEvents(c *gin.Context) {
	id := c.Param("id")

	events, err := h.usecase.ListEvents(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentEvents(events))
}

// bindOptionalBody reads a JSON body that may be absent entirely; an empty
// body yields the zero payload. Malformed JSON still rejects with 400.
func bindOptionalBody[T any](c *gin.Context) (T, bool) {
	var payload T
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
			return payload, false
		}
	}
	return payload, true
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidProvider),
		errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentConflict):
		return pkg.NewDomainErrorSimple("PAYMENT_CONFLICT", "Payment was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package routes

import (
	"payledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPaymentSessions = "/payment_sessions"
	PathPayments        = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, sessionHandler *handlers.PaymentSessionHandler, paymentHandler *handlers.PaymentHandler) {
	sessions := rg.Group(PathPaymentSessions)
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.GET("", sessionHandler.ListSessions)
		sessions.GET("/:id", sessionHandler.GetSession)
		sessions.POST("/:id/capture", sessionHandler.CaptureSession)
		sessions.POST("/:id/cancel", sessionHandler.CancelSession)
		sessions.POST("/:id/sync", sessionHandler.SyncSession)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.AuthorizePayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.POST("/:id/capture", paymentHandler.CapturePayment)
		payments.POST("/:id/refund", paymentHandler.RefundPayment)
		payments.POST("/:id/void", paymentHandler.VoidPayment)
		payments.POST("/:id/sync", paymentHandler.SyncPayment)
		payments.GET("/:id/events", paymentHandler.ListPaymentEvents)
	}
}

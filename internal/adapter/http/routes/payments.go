package routes

import (
	"payment_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.ProcessPayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.POST("/:id/cancel", paymentHandler.CancelPayment)
		payments.POST("/:id/refund", paymentHandler.RefundPayment)
		payments.GET("/order/:orderId", paymentHandler.GetPaymentsByOrderID)
		payments.GET("/customer/:customerId", paymentHandler.GetPaymentsByCustomerID)
	}
}

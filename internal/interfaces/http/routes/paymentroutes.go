package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/paygate/internal/interfaces/http/handlers"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
}

// SetupPaymentRoutes configures payment routes.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payments := engine.Group("/payments/ccavenue")
	{
		payments.GET("/initiate", cfg.PaymentHandler.InitiatePayment)
		payments.POST("/initiate", cfg.PaymentHandler.InitiatePayment)
		// The gateway posts the encrypted result here; the cancel URL is hit
		// by the buyer's browser, so both verbs are accepted.
		payments.POST("/callback", cfg.PaymentHandler.HandleCallback)
		payments.GET("/cancel", cfg.PaymentHandler.CancelPayment)
		payments.POST("/cancel", cfg.PaymentHandler.CancelPayment)
	}
}

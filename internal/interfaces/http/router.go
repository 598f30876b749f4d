package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentUsecases "github.com/orris-inc/paygate/internal/application/payment/usecases"
	"github.com/orris-inc/paygate/internal/infrastructure/config"
	"github.com/orris-inc/paygate/internal/infrastructure/email"
	"github.com/orris-inc/paygate/internal/infrastructure/gateway/ccavenue"
	"github.com/orris-inc/paygate/internal/infrastructure/repository"
	"github.com/orris-inc/paygate/internal/interfaces/http/handlers"
	"github.com/orris-inc/paygate/internal/interfaces/http/middleware"
	"github.com/orris-inc/paygate/internal/interfaces/http/routes"
	"github.com/orris-inc/paygate/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	paymentHandler *handlers.PaymentHandler
}

// NewRouter wires repositories, the gateway adapter and use cases into a
// configured gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))

	orderRepo := repository.NewOrderRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	requestRepo := repository.NewPaymentRequestRepository(db)
	outcomeRepo := repository.NewPaymentOutcomeRepository(db)

	gateway := ccavenue.NewGateway(cfg.Gateway)
	urls := paymentUsecases.PaymentURLs{BaseURL: cfg.Server.BaseURL}

	initiateUC := paymentUsecases.NewInitiatePaymentUseCase(
		orderRepo, addressRepo, requestRepo, gateway, cfg.Gateway, urls, log)
	callbackUC := paymentUsecases.NewHandleCallbackUseCase(
		requestRepo, outcomeRepo, orderRepo, gateway, urls, log)
	cancelUC := paymentUsecases.NewCancelPaymentUseCase(requestRepo, urls, log)

	if cfg.Email.Enabled {
		notifier := email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.Username,
			Password:    cfg.Email.Password,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
		callbackUC.SetReceiptNotifier(notifier)
	}

	paymentHandler := handlers.NewPaymentHandler(initiateUC, callbackUC, cancelUC, log)

	router := &Router{
		engine:         engine,
		paymentHandler: paymentHandler,
	}
	router.registerRoutes()

	return router
}

func (r *Router) registerRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupPaymentRoutes(r.engine, &routes.PaymentRouteConfig{
		PaymentHandler: r.paymentHandler,
	})
}

// Engine exposes the underlying gin engine for serving and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

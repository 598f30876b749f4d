package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	paymentUsecases "github.com/orris-inc/paygate/internal/application/payment/usecases"
	"github.com/orris-inc/paygate/internal/shared/logger"
	"github.com/orris-inc/paygate/internal/shared/utils"
)

// gatewayFormTemplate renders a self-submitting form that posts the encrypted
// request to the gateway. The buyer's browser leaves the site here.
var gatewayFormTemplate = template.Must(template.New("gatewayForm").Parse(`<!DOCTYPE html>
<html>
<head><title>Redirecting to payment gateway</title></head>
<body onload="document.forms['gateway'].submit()">
<p>Redirecting to the payment gateway, please wait...</p>
<form id="gateway" name="gateway" method="post" action="{{.GatewayURL}}">
<input type="hidden" name="encRequest" value="{{.EncRequest}}">
<input type="hidden" name="access_code" value="{{.AccessCode}}">
<noscript><input type="submit" value="Continue to payment"></noscript>
</form>
</body>
</html>
`))

type PaymentHandler struct {
	initiatePaymentUC *paymentUsecases.InitiatePaymentUseCase
	handleCallbackUC  *paymentUsecases.HandleCallbackUseCase
	cancelPaymentUC   *paymentUsecases.CancelPaymentUseCase
	logger            logger.Interface
}

func NewPaymentHandler(
	initiatePaymentUC *paymentUsecases.InitiatePaymentUseCase,
	handleCallbackUC *paymentUsecases.HandleCallbackUseCase,
	cancelPaymentUC *paymentUsecases.CancelPaymentUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		initiatePaymentUC: initiatePaymentUC,
		handleCallbackUC:  handleCallbackUC,
		cancelPaymentUC:   cancelPaymentUC,
		logger:            logger,
	}
}

// InitiatePayment builds the encrypted gateway request for an order and
// responds with an auto-submitting HTML form targeting the gateway.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	orderNo := c.Query("order_id")
	if orderNo == "" {
		orderNo = c.PostForm("order_id")
	}

	result, err := h.initiatePaymentUC.Execute(c.Request.Context(), paymentUsecases.InitiatePaymentCommand{
		OrderNo: orderNo,
	})
	if err != nil {
		h.logger.Warnw("failed to initiate payment", "order_no", orderNo, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := gatewayFormTemplate.Execute(c.Writer, result.Envelope); err != nil {
		h.logger.Errorw("failed to render gateway form", "order_no", orderNo, "error", err)
	}
}

// HandleCallback receives the gateway's encrypted response and redirects the
// buyer to the outcome page. It never renders an error body.
func (h *PaymentHandler) HandleCallback(c *gin.Context) {
	encResp := c.PostForm("encResp")

	redirect := h.handleCallbackUC.Execute(c.Request.Context(), encResp)

	c.Redirect(http.StatusFound, redirect.Location)
}

// CancelPayment handles the buyer backing out on the gateway's pages.
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	orderNo := c.Query("order_id")
	if orderNo == "" {
		orderNo = c.PostForm("order_id")
	}

	redirect := h.cancelPaymentUC.Execute(c.Request.Context(), orderNo)

	c.Redirect(http.StatusFound, redirect.Location)
}

package usecases

import (
	"context"
	"net/url"
	"strings"

	"github.com/orris-inc/paygate/internal/domain/order"
	"github.com/orris-inc/paygate/internal/domain/payment"
	vo "github.com/orris-inc/paygate/internal/domain/payment/valueobjects"
	"github.com/orris-inc/paygate/internal/infrastructure/gateway/ccavenue"
	apperrors "github.com/orris-inc/paygate/internal/shared/errors"
	"github.com/orris-inc/paygate/internal/shared/goroutine"
	"github.com/orris-inc/paygate/internal/shared/logger"
)

const genericFailureReason = "Payment processing error"

// ReceiptNotifier sends a payment receipt to the buyer. Failures are logged
// and never block the callback flow.
type ReceiptNotifier interface {
	SendPaymentReceipt(to, orderNo, trackingID string, amount vo.Money) error
}

// CallbackRedirect is the outcome of the callback path: a browser redirect
// target. The callback handler must always produce one, never an error page.
type CallbackRedirect struct {
	Location string
}

type HandleCallbackUseCase struct {
	requestRepo payment.PaymentRequestRepository
	outcomeRepo payment.PaymentOutcomeRepository
	orderRepo   order.OrderRepository
	gateway     GatewayClient
	notifier    ReceiptNotifier // optional
	urls        PaymentURLs
	logger      logger.Interface
}

func NewHandleCallbackUseCase(
	requestRepo payment.PaymentRequestRepository,
	outcomeRepo payment.PaymentOutcomeRepository,
	orderRepo order.OrderRepository,
	gateway GatewayClient,
	urls PaymentURLs,
	logger logger.Interface,
) *HandleCallbackUseCase {
	return &HandleCallbackUseCase{
		requestRepo: requestRepo,
		outcomeRepo: outcomeRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		urls:        urls,
		logger:      logger,
	}
}

// SetReceiptNotifier sets the receipt notifier (optional dependency injection)
func (uc *HandleCallbackUseCase) SetReceiptNotifier(notifier ReceiptNotifier) {
	uc.notifier = notifier
}

// Execute processes an encrypted gateway callback. It never returns an error:
// every failure degrades to a failed-payment redirect with a generic reason,
// and the underlying cause is logged for audit.
func (uc *HandleCallbackUseCase) Execute(ctx context.Context, encResp string) *CallbackRedirect {
	if encResp == "" {
		uc.logger.Warnw("payment callback received without encrypted response")
		return uc.failureRedirect("", genericFailureReason)
	}

	callback, err := uc.gateway.DecodeCallback(encResp)
	if err != nil {
		uc.logger.Errorw("failed to decode payment callback", "error", err)
		return uc.failureRedirect("", genericFailureReason)
	}

	uc.logger.Infow("payment callback received",
		"order_no", callback.OrderNo(),
		"tracking_id", callback.TrackingID(),
		"order_status", callback.OrderStatus())

	if callback.IsSuccess() {
		return uc.handleSuccess(ctx, callback)
	}
	return uc.handleFailure(ctx, callback)
}

func (uc *HandleCallbackUseCase) handleSuccess(ctx context.Context, callback ccavenue.Callback) *CallbackRedirect {
	orderNo := callback.OrderNo()
	trackingID := callback.TrackingID()

	if orderNo == "" || trackingID == "" {
		uc.logger.Errorw("payment callback missing order or tracking identifier", "order_no", orderNo, "tracking_id", trackingID)
		return uc.failureRedirect(orderNo, genericFailureReason)
	}

	tracking, err := uc.requestRepo.GetLatestByOrderNo(ctx, orderNo)
	if err != nil {
		uc.logger.Errorw("no payment request tracked for callback order", "order_no", orderNo, "error", err)
		return uc.failureRedirect(orderNo, genericFailureReason)
	}

	exists, err := uc.outcomeRepo.ExistsByReference(ctx, trackingID)
	if err != nil {
		uc.logger.Errorw("failed to check existing payment outcome", "tracking_id", trackingID, "error", err)
		return uc.failureRedirect(orderNo, genericFailureReason)
	}

	if !exists {
		outcome, err := payment.NewPaymentOutcome(trackingID, orderNo, tracking.Amount())
		if err != nil {
			uc.logger.Errorw("failed to build payment outcome", "tracking_id", trackingID, "error", err)
			return uc.failureRedirect(orderNo, genericFailureReason)
		}

		if err := uc.outcomeRepo.Create(ctx, outcome); err != nil {
			// A concurrent callback for the same tracking ID may have won the
			// insert; the unique constraint makes that safe to treat as done.
			if !apperrors.IsDuplicateError(err) {
				uc.logger.Errorw("failed to record payment outcome", "tracking_id", trackingID, "error", err)
				return uc.failureRedirect(orderNo, genericFailureReason)
			}
			uc.logger.Infow("payment outcome already recorded by concurrent callback", "tracking_id", trackingID)
		}
	} else {
		uc.logger.Infow("payment outcome already exists, skipping creation", "tracking_id", trackingID)
	}

	// The outcome is recorded; settlement bookkeeping failures below are
	// logged but no longer fail the redirect.
	if err := tracking.MarkAsPaid(trackingID); err != nil {
		uc.logger.Warnw("failed to mark payment request as paid", "order_no", orderNo, "error", err)
	} else if err := uc.requestRepo.Update(ctx, tracking); err != nil {
		uc.logger.Errorw("failed to update payment request after payment", "order_no", orderNo, "error", err)
	}

	uc.sendReceipt(ctx, orderNo, trackingID, tracking.Amount())

	uc.logger.Infow("payment recorded",
		"order_no", orderNo,
		"tracking_id", trackingID,
		"amount", tracking.Amount().String())

	return uc.successRedirect(orderNo, trackingID)
}

func (uc *HandleCallbackUseCase) handleFailure(ctx context.Context, callback ccavenue.Callback) *CallbackRedirect {
	orderNo := callback.OrderNo()

	reason := callback.FailureMessage()
	if reason == "" {
		reason = "Payment failed"
	}

	if orderNo != "" {
		if tracking, err := uc.requestRepo.GetLatestByOrderNo(ctx, orderNo); err != nil {
			uc.logger.Warnw("no payment request tracked for failed callback", "order_no", orderNo, "error", err)
		} else if err := tracking.MarkAsFailed(reason); err != nil {
			uc.logger.Warnw("failed to mark payment request as failed", "order_no", orderNo, "error", err)
		} else if err := uc.requestRepo.Update(ctx, tracking); err != nil {
			uc.logger.Errorw("failed to update payment request after failure", "order_no", orderNo, "error", err)
		}
	}

	uc.logger.Infow("payment failed",
		"order_no", orderNo,
		"order_status", callback.OrderStatus(),
		"reason", reason)

	return uc.failureRedirect(orderNo, reason)
}

func (uc *HandleCallbackUseCase) sendReceipt(ctx context.Context, orderNo, trackingID string, amount vo.Money) {
	if uc.notifier == nil {
		return
	}

	ord, err := uc.orderRepo.GetByOrderNo(ctx, orderNo)
	if err != nil || ord.ContactEmail() == "" {
		uc.logger.Debugw("skipping payment receipt, no contact email", "order_no", orderNo)
		return
	}

	to := ord.ContactEmail()
	goroutine.SafeGo(uc.logger, "payment-receipt-email", func() {
		if err := uc.notifier.SendPaymentReceipt(to, orderNo, trackingID, amount); err != nil {
			uc.logger.Warnw("failed to send payment receipt", "order_no", orderNo, "error", err)
		}
	})
}

func (uc *HandleCallbackUseCase) successRedirect(orderNo, trackingID string) *CallbackRedirect {
	query := url.Values{}
	query.Set("order_id", orderNo)
	query.Set("tracking_id", trackingID)
	return &CallbackRedirect{
		Location: strings.TrimRight(uc.urls.BaseURL, "/") + "/payment-success?" + query.Encode(),
	}
}

func (uc *HandleCallbackUseCase) failureRedirect(orderNo, reason string) *CallbackRedirect {
	query := url.Values{}
	if orderNo != "" {
		query.Set("order_id", orderNo)
	}
	query.Set("reason", reason)
	return &CallbackRedirect{
		Location: strings.TrimRight(uc.urls.BaseURL, "/") + "/payment-failed?" + query.Encode(),
	}
}

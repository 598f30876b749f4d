package usecases

import (
	"context"
	"net/url"
	"strings"

	"github.com/orris-inc/paygate/internal/domain/payment"
	"github.com/orris-inc/paygate/internal/shared/logger"
)

// CancelPaymentUseCase records a buyer-initiated cancellation. It is
// unconditional: the redirect is always produced, and bookkeeping failures are
// only logged.
type CancelPaymentUseCase struct {
	requestRepo payment.PaymentRequestRepository
	urls        PaymentURLs
	logger      logger.Interface
}

func NewCancelPaymentUseCase(
	requestRepo payment.PaymentRequestRepository,
	urls PaymentURLs,
	logger logger.Interface,
) *CancelPaymentUseCase {
	return &CancelPaymentUseCase{
		requestRepo: requestRepo,
		urls:        urls,
		logger:      logger,
	}
}

func (uc *CancelPaymentUseCase) Execute(ctx context.Context, orderNo string) *CallbackRedirect {
	if orderNo != "" {
		if tracking, err := uc.requestRepo.GetLatestByOrderNo(ctx, orderNo); err != nil {
			uc.logger.Debugw("no payment request tracked for cancelled order", "order_no", orderNo, "error", err)
		} else if err := tracking.MarkAsCancelled(); err != nil {
			uc.logger.Warnw("failed to mark payment request as cancelled", "order_no", orderNo, "error", err)
		} else if err := uc.requestRepo.Update(ctx, tracking); err != nil {
			uc.logger.Errorw("failed to update cancelled payment request", "order_no", orderNo, "error", err)
		}
	}

	uc.logger.Infow("payment cancelled by buyer", "order_no", orderNo)

	query := url.Values{}
	query.Set("order_id", orderNo)
	return &CallbackRedirect{
		Location: strings.TrimRight(uc.urls.BaseURL, "/") + "/payment-cancelled?" + query.Encode(),
	}
}

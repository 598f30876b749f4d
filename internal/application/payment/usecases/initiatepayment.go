package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/orris-inc/paygate/internal/domain/order"
	"github.com/orris-inc/paygate/internal/domain/payment"
	vo "github.com/orris-inc/paygate/internal/domain/payment/valueobjects"
	"github.com/orris-inc/paygate/internal/infrastructure/gateway/ccavenue"
	"github.com/orris-inc/paygate/internal/shared/config"
	apperrors "github.com/orris-inc/paygate/internal/shared/errors"
	"github.com/orris-inc/paygate/internal/shared/logger"
)

// GatewayClient is the protocol surface the orchestrator needs from the
// gateway adapter.
type GatewayClient interface {
	BuildRequest(fields ccavenue.RequestFields) (*ccavenue.Envelope, error)
	DecodeCallback(encResp string) (ccavenue.Callback, error)
}

// PaymentURLs derives the redirect targets the gateway and the buyer's
// browser are sent to. BaseURL is the externally reachable address of this
// application, without trailing slash.
type PaymentURLs struct {
	BaseURL string
}

func (u PaymentURLs) CallbackURL() string {
	return strings.TrimRight(u.BaseURL, "/") + "/payments/ccavenue/callback"
}

func (u PaymentURLs) CancelURL() string {
	return strings.TrimRight(u.BaseURL, "/") + "/payments/ccavenue/cancel"
}

type InitiatePaymentCommand struct {
	OrderNo string
}

type InitiatePaymentResult struct {
	OrderNo  string
	Envelope *ccavenue.Envelope
}

type InitiatePaymentUseCase struct {
	orderRepo   order.OrderRepository
	addressRepo order.AddressRepository
	requestRepo payment.PaymentRequestRepository
	gateway     GatewayClient
	gatewayCfg  config.GatewayConfig
	urls        PaymentURLs
	logger      logger.Interface
}

func NewInitiatePaymentUseCase(
	orderRepo order.OrderRepository,
	addressRepo order.AddressRepository,
	requestRepo payment.PaymentRequestRepository,
	gateway GatewayClient,
	gatewayCfg config.GatewayConfig,
	urls PaymentURLs,
	logger logger.Interface,
) *InitiatePaymentUseCase {
	return &InitiatePaymentUseCase{
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		requestRepo: requestRepo,
		gateway:     gateway,
		gatewayCfg:  gatewayCfg,
		urls:        urls,
		logger:      logger,
	}
}

func (uc *InitiatePaymentUseCase) Execute(ctx context.Context, cmd InitiatePaymentCommand) (*InitiatePaymentResult, error) {
	if cmd.OrderNo == "" {
		return nil, apperrors.NewValidationError("order ID is required")
	}

	ord, err := uc.orderRepo.GetByOrderNo(ctx, cmd.OrderNo)
	if err != nil {
		uc.logger.Warnw("failed to load order for payment", "order_no", cmd.OrderNo, "error", err)
		return nil, err
	}

	if !ord.Status().IsSubmittable() {
		return nil, apperrors.NewValidationError("order is not submitted", fmt.Sprintf("order %s has status %s", ord.OrderNo(), ord.Status()))
	}

	// The configured supported-currency list is authoritative; this gate must
	// run before any request is encoded.
	if !uc.gatewayCfg.SupportsCurrency(ord.Currency()) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("transactions in currency %s are not supported", ord.Currency()))
	}

	amount := vo.NewMoney(ord.GrandTotalCents(), ord.Currency())

	fields := ccavenue.RequestFields{
		OrderNo:     ord.OrderNo(),
		Amount:      amount.FormatAmount(),
		Currency:    ord.Currency(),
		RedirectURL: uc.redirectURL(),
		CancelURL:   uc.cancelURL(),
		Optional:    uc.buildOptionalFields(ctx, ord),
	}

	envelope, err := uc.gateway.BuildRequest(fields)
	if err != nil {
		uc.logger.Errorw("failed to build gateway request", "order_no", ord.OrderNo(), "error", err)
		return nil, err
	}

	tracking, err := payment.NewPaymentRequest(ord.OrderNo(), amount, envelope.AccessCode, envelope.GatewayURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment request: %w", err)
	}

	if err := uc.requestRepo.Create(ctx, tracking); err != nil {
		uc.logger.Errorw("failed to save payment request", "order_no", ord.OrderNo(), "error", err)
		return nil, fmt.Errorf("failed to save payment request: %w", err)
	}

	uc.logger.Infow("payment request created",
		"order_no", ord.OrderNo(),
		"amount", amount.String(),
		"gateway_url", envelope.GatewayURL,
		"test_mode", uc.gatewayCfg.TestMode)

	return &InitiatePaymentResult{
		OrderNo:  ord.OrderNo(),
		Envelope: envelope,
	}, nil
}

func (uc *InitiatePaymentUseCase) redirectURL() string {
	if uc.gatewayCfg.SuccessURL != "" {
		return uc.gatewayCfg.SuccessURL
	}
	return uc.urls.CallbackURL()
}

func (uc *InitiatePaymentUseCase) cancelURL() string {
	if uc.gatewayCfg.CancelURL != "" {
		return uc.gatewayCfg.CancelURL
	}
	return uc.urls.CancelURL()
}

// buildOptionalFields assembles the billing and delivery blocks. Address
// lookups are best-effort: a missing address omits its block and the payment
// proceeds without it.
func (uc *InitiatePaymentUseCase) buildOptionalFields(ctx context.Context, ord *order.Order) map[string]string {
	optional := map[string]string{
		"billing_name": ord.CustomerName(),
	}
	if ord.ContactEmail() != "" {
		optional["billing_email"] = ord.ContactEmail()
	}
	if ord.ContactMobile() != "" {
		optional["billing_tel"] = ord.ContactMobile()
	}

	if id := ord.BillingAddressID(); id != nil {
		if addr, err := uc.addressRepo.GetByID(ctx, *id); err != nil {
			uc.logger.Debugw("billing address lookup failed, continuing without it", "order_no", ord.OrderNo(), "address_id", *id, "error", err)
		} else {
			optional["billing_address"] = addr.Line1()
			optional["billing_city"] = addr.City()
			optional["billing_state"] = addr.State()
			optional["billing_zip"] = addr.Pincode()
			optional["billing_country"] = countryOrDefault(addr.Country())
		}
	}

	shippingID := ord.ShippingAddressID()
	if shippingID != nil && (ord.BillingAddressID() == nil || *shippingID != *ord.BillingAddressID()) {
		if addr, err := uc.addressRepo.GetByID(ctx, *shippingID); err != nil {
			uc.logger.Debugw("shipping address lookup failed, continuing without it", "order_no", ord.OrderNo(), "address_id", *shippingID, "error", err)
		} else {
			optional["delivery_name"] = ord.CustomerName()
			optional["delivery_address"] = addr.Line1()
			optional["delivery_city"] = addr.City()
			optional["delivery_state"] = addr.State()
			optional["delivery_zip"] = addr.Pincode()
			optional["delivery_country"] = countryOrDefault(addr.Country())
		}
	}

	return optional
}

func countryOrDefault(country string) string {
	if country == "" {
		return "India"
	}
	return country
}

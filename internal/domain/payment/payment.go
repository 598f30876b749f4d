package payment

import (
	"fmt"
	"time"

	vo "github.com/orris-inc/paygate/internal/domain/payment/valueobjects"
	"github.com/orris-inc/paygate/internal/shared/biztime"
)

// PaymentRequest is the tracking record created when an order is handed to the
// gateway. It links the order to the gateway metadata used for the request so
// the callback can be reconciled and audited. It is never deleted; status is
// the only field that changes after creation.
type PaymentRequest struct {
	id         uint
	orderNo    string
	amount     vo.Money
	accessCode string
	gatewayURL string
	status     vo.RequestStatus

	trackingID    *string
	failureReason *string
	paidAt        *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewPaymentRequest(orderNo string, amount vo.Money, accessCode, gatewayURL string) (*PaymentRequest, error) {
	if orderNo == "" {
		return nil, fmt.Errorf("order number is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if accessCode == "" {
		return nil, fmt.Errorf("access code is required")
	}
	if gatewayURL == "" {
		return nil, fmt.Errorf("gateway URL is required")
	}

	now := biztime.NowUTC()

	return &PaymentRequest{
		orderNo:    orderNo,
		amount:     amount,
		accessCode: accessCode,
		gatewayURL: gatewayURL,
		status:     vo.RequestStatusSent,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// MarkAsPaid settles the request with the gateway-assigned tracking ID.
// Calling it on an already-paid request is a no-op.
func (p *PaymentRequest) MarkAsPaid(trackingID string) error {
	if p.status == vo.RequestStatusPaid {
		return nil
	}

	if p.status != vo.RequestStatusSent {
		return fmt.Errorf("cannot mark payment request as paid with status %s", p.status)
	}

	now := biztime.NowUTC()
	p.status = vo.RequestStatusPaid
	p.trackingID = &trackingID
	p.paidAt = &now
	p.updatedAt = now
	p.version++

	return nil
}

func (p *PaymentRequest) MarkAsFailed(reason string) error {
	if p.status.IsFinal() {
		return fmt.Errorf("cannot mark payment request as failed with final status %s", p.status)
	}

	p.status = vo.RequestStatusFailed
	p.failureReason = &reason
	p.updatedAt = biztime.NowUTC()
	p.version++

	return nil
}

// MarkAsCancelled records a buyer-initiated cancellation. Cancelling an
// already-final request is a no-op.
func (p *PaymentRequest) MarkAsCancelled() error {
	if p.status.IsFinal() {
		return nil
	}

	p.status = vo.RequestStatusCancelled
	p.updatedAt = biztime.NowUTC()
	p.version++

	return nil
}

func (p *PaymentRequest) ID() uint {
	return p.id
}

func (p *PaymentRequest) OrderNo() string {
	return p.orderNo
}

func (p *PaymentRequest) Amount() vo.Money {
	return p.amount
}

func (p *PaymentRequest) AccessCode() string {
	return p.accessCode
}

func (p *PaymentRequest) GatewayURL() string {
	return p.gatewayURL
}

func (p *PaymentRequest) Status() vo.RequestStatus {
	return p.status
}

func (p *PaymentRequest) TrackingID() *string {
	return p.trackingID
}

func (p *PaymentRequest) FailureReason() *string {
	return p.failureReason
}

func (p *PaymentRequest) PaidAt() *time.Time {
	return p.paidAt
}

func (p *PaymentRequest) Version() int {
	return p.version
}

func (p *PaymentRequest) CreatedAt() time.Time {
	return p.createdAt
}

func (p *PaymentRequest) UpdatedAt() time.Time {
	return p.updatedAt
}

// SetID sets the payment request ID after persistence (used by repository after Create)
func (p *PaymentRequest) SetID(id uint) {
	p.id = id
}

// PaymentRequestReconstructParams carries persisted state back into the domain.
type PaymentRequestReconstructParams struct {
	ID            uint
	OrderNo       string
	Amount        vo.Money
	AccessCode    string
	GatewayURL    string
	Status        vo.RequestStatus
	TrackingID    *string
	FailureReason *string
	PaidAt        *time.Time
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructPaymentRequest(params PaymentRequestReconstructParams) *PaymentRequest {
	return &PaymentRequest{
		id:            params.ID,
		orderNo:       params.OrderNo,
		amount:        params.Amount,
		accessCode:    params.AccessCode,
		gatewayURL:    params.GatewayURL,
		status:        params.Status,
		trackingID:    params.TrackingID,
		failureReason: params.FailureReason,
		paidAt:        params.PaidAt,
		version:       params.Version,
		createdAt:     params.CreatedAt,
		updatedAt:     params.UpdatedAt,
	}
}

package payment

import (
	"fmt"
	"time"

	vo "github.com/orris-inc/paygate/internal/domain/payment/valueobjects"
	"github.com/orris-inc/paygate/internal/shared/biztime"
)

// PaymentOutcome is the ledger entry recorded when the gateway reports a
// successful payment. The reference number is the gateway tracking ID and is
// the idempotency key: at most one outcome may exist per reference number,
// enforced by a unique constraint in the store.
type PaymentOutcome struct {
	id          uint
	referenceNo string
	orderNo     string
	amount      vo.Money
	postingDate time.Time
	createdAt   time.Time
}

func NewPaymentOutcome(referenceNo, orderNo string, amount vo.Money) (*PaymentOutcome, error) {
	if referenceNo == "" {
		return nil, fmt.Errorf("reference number is required")
	}
	if orderNo == "" {
		return nil, fmt.Errorf("order number is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}

	now := biztime.NowUTC()

	return &PaymentOutcome{
		referenceNo: referenceNo,
		orderNo:     orderNo,
		amount:      amount,
		postingDate: now,
		createdAt:   now,
	}, nil
}

func (o *PaymentOutcome) ID() uint {
	return o.id
}

func (o *PaymentOutcome) ReferenceNo() string {
	return o.referenceNo
}

func (o *PaymentOutcome) OrderNo() string {
	return o.orderNo
}

func (o *PaymentOutcome) Amount() vo.Money {
	return o.amount
}

func (o *PaymentOutcome) PostingDate() time.Time {
	return o.postingDate
}

func (o *PaymentOutcome) CreatedAt() time.Time {
	return o.createdAt
}

// SetID sets the outcome ID after persistence (used by repository after Create)
func (o *PaymentOutcome) SetID(id uint) {
	o.id = id
}

func ReconstructPaymentOutcome(id uint, referenceNo, orderNo string, amount vo.Money, postingDate, createdAt time.Time) *PaymentOutcome {
	return &PaymentOutcome{
		id:          id,
		referenceNo: referenceNo,
		orderNo:     orderNo,
		amount:      amount,
		postingDate: postingDate,
		createdAt:   createdAt,
	}
}

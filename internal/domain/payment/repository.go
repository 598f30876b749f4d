package payment

import "context"

type PaymentRequestRepository interface {
	Create(ctx context.Context, request *PaymentRequest) error
	Update(ctx context.Context, request *PaymentRequest) error
	GetLatestByOrderNo(ctx context.Context, orderNo string) (*PaymentRequest, error)
}

// PaymentOutcomeRepository persists settled payments. Create must fail with a
// duplicate-key error when an outcome with the same reference number already
// exists; concurrent callbacks rely on that constraint, not on in-memory locks.
type PaymentOutcomeRepository interface {
	Create(ctx context.Context, outcome *PaymentOutcome) error
	ExistsByReference(ctx context.Context, referenceNo string) (bool, error)
}

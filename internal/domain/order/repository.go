package order

import "context"

type OrderRepository interface {
	GetByOrderNo(ctx context.Context, orderNo string) (*Order, error)
}

// AddressRepository may return a not-found error; callers on the payment path
// treat missing addresses as non-fatal.
type AddressRepository interface {
	GetByID(ctx context.Context, id uint) (*Address, error)
}

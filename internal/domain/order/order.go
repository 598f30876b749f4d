package order

import "time"

// Status is the lifecycle state of a sales order as owned by the surrounding
// order-management system. Payments may only be initiated for submitted orders.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsSubmittable() bool {
	return s == StatusSubmitted
}

func (s Status) String() string {
	return string(s)
}

// Order is a read model over the order store. The payment core never mutates
// orders directly; payment state lives on the tracking record.
type Order struct {
	id                uint
	orderNo           string
	customerName      string
	contactEmail      string
	contactMobile     string
	grandTotalCents   int64
	currency          string
	status            Status
	billingAddressID  *uint
	shippingAddressID *uint
	createdAt         time.Time
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) OrderNo() string {
	return o.orderNo
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) ContactEmail() string {
	return o.contactEmail
}

func (o *Order) ContactMobile() string {
	return o.contactMobile
}

func (o *Order) GrandTotalCents() int64 {
	return o.grandTotalCents
}

func (o *Order) Currency() string {
	return o.currency
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) BillingAddressID() *uint {
	return o.billingAddressID
}

func (o *Order) ShippingAddressID() *uint {
	return o.shippingAddressID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// OrderReconstructParams carries persisted state back into the domain.
type OrderReconstructParams struct {
	ID                uint
	OrderNo           string
	CustomerName      string
	ContactEmail      string
	ContactMobile     string
	GrandTotalCents   int64
	Currency          string
	Status            Status
	BillingAddressID  *uint
	ShippingAddressID *uint
	CreatedAt         time.Time
}

func ReconstructOrder(params OrderReconstructParams) *Order {
	return &Order{
		id:                params.ID,
		orderNo:           params.OrderNo,
		customerName:      params.CustomerName,
		contactEmail:      params.ContactEmail,
		contactMobile:     params.ContactMobile,
		grandTotalCents:   params.GrandTotalCents,
		currency:          params.Currency,
		status:            params.Status,
		billingAddressID:  params.BillingAddressID,
		shippingAddressID: params.ShippingAddressID,
		createdAt:         params.CreatedAt,
	}
}

package valueobjects

// RequestStatus tracks a payment request from the moment the encrypted
// request is handed to the gateway until the callback settles it.
type RequestStatus string

const (
	RequestStatusSent      RequestStatus = "request_sent"
	RequestStatusPaid      RequestStatus = "paid"
	RequestStatusFailed    RequestStatus = "failed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusSent, RequestStatusPaid, RequestStatusFailed, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

func (s RequestStatus) IsPaid() bool {
	return s == RequestStatusPaid
}

func (s RequestStatus) IsFinal() bool {
	return s == RequestStatusPaid || s == RequestStatusFailed || s == RequestStatusCancelled
}

func (s RequestStatus) String() string {
	return string(s)
}

package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orris-inc/paygate/internal/domain/order"
	"github.com/orris-inc/paygate/internal/domain/payment"
	vo "github.com/orris-inc/paygate/internal/domain/payment/valueobjects"
	"github.com/orris-inc/paygate/internal/infrastructure/gateway/ccavenue"
	apperrors "github.com/orris-inc/paygate/internal/shared/errors"
)

type mockOrderRepo struct {
	orders map[string]*order.Order
	err    error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*order.Order)}
}

func (m *mockOrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	if o, ok := m.orders[orderNo]; ok {
		return o, nil
	}
	return nil, apperrors.NewNotFoundError("order not found")
}

type mockAddressRepo struct {
	addresses map[uint]*order.Address
	err       error
}

func newMockAddressRepo() *mockAddressRepo {
	return &mockAddressRepo{addresses: make(map[uint]*order.Address)}
}

func (m *mockAddressRepo) GetByID(ctx context.Context, id uint) (*order.Address, error) {
	if m.err != nil {
		return nil, m.err
	}
	if a, ok := m.addresses[id]; ok {
		return a, nil
	}
	return nil, apperrors.NewNotFoundError("address not found")
}

type mockRequestRepo struct {
	created   []*payment.PaymentRequest
	updated   []*payment.PaymentRequest
	latest    map[string]*payment.PaymentRequest
	createErr error
	updateErr error
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{latest: make(map[string]*payment.PaymentRequest)}
}

func (m *mockRequestRepo) Create(ctx context.Context, req *payment.PaymentRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
	req.SetID(uint(len(m.created) + 1))
	m.created = append(m.created, req)
	m.latest[req.OrderNo()] = req
	return nil
}

func (m *mockRequestRepo) Update(ctx context.Context, req *payment.PaymentRequest) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, req)
	return nil
}

func (m *mockRequestRepo) GetLatestByOrderNo(ctx context.Context, orderNo string) (*payment.PaymentRequest, error) {
	if req, ok := m.latest[orderNo]; ok {
		return req, nil
	}
	return nil, apperrors.NewNotFoundError("payment request not found")
}

type mockOutcomeRepo struct {
	outcomes  map[string]*payment.PaymentOutcome
	existsErr error
	createErr error
}

func newMockOutcomeRepo() *mockOutcomeRepo {
	return &mockOutcomeRepo{outcomes: make(map[string]*payment.PaymentOutcome)}
}

func (m *mockOutcomeRepo) Create(ctx context.Context, o *payment.PaymentOutcome) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.outcomes[o.ReferenceNo()]; ok {
		return fmt.Errorf("insert failed: Duplicate entry '%s'", o.ReferenceNo())
	}
	o.SetID(uint(len(m.outcomes) + 1))
	m.outcomes[o.ReferenceNo()] = o
	return nil
}

func (m *mockOutcomeRepo) ExistsByReference(ctx context.Context, referenceNo string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.outcomes[referenceNo]
	return ok, nil
}

type mockGateway struct {
	lastFields ccavenue.RequestFields
	envelope   *ccavenue.Envelope
	buildErr   error

	callback  ccavenue.Callback
	decodeErr error
}

func (m *mockGateway) BuildRequest(fields ccavenue.RequestFields) (*ccavenue.Envelope, error) {
	m.lastFields = fields
	if m.buildErr != nil {
		return nil, m.buildErr
	}
	if m.envelope != nil {
		return m.envelope, nil
	}
	return &ccavenue.Envelope{
		GatewayURL: "https://test.ccavenue.com/transaction/transaction.do",
		AccessCode: "AVXX00XX00",
		EncRequest: "deadbeef",
	}, nil
}

func (m *mockGateway) DecodeCallback(encResp string) (ccavenue.Callback, error) {
	if m.decodeErr != nil {
		return nil, m.decodeErr
	}
	return m.callback, nil
}

type mockNotifier struct {
	sent chan receiptCall
	err  error
}

type receiptCall struct {
	to         string
	orderNo    string
	trackingID string
	amount     vo.Money
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{sent: make(chan receiptCall, 1)}
}

func (m *mockNotifier) SendPaymentReceipt(to, orderNo, trackingID string, amount vo.Money) error {
	m.sent <- receiptCall{to: to, orderNo: orderNo, trackingID: trackingID, amount: amount}
	return m.err
}

func mustRequest(t *testing.T, orderNo string, cents int64) *payment.PaymentRequest {
	t.Helper()
	req, err := payment.NewPaymentRequest(orderNo, vo.NewMoney(cents, "INR"),
		"AVXX00XX00", "https://test.ccavenue.com/transaction/transaction.do")
	require.NoError(t, err)
	return req
}

func submittedOrder(orderNo string) *order.Order {
	return order.ReconstructOrder(order.OrderReconstructParams{
		ID:              1,
		OrderNo:         orderNo,
		CustomerName:    "Asha Rao",
		ContactEmail:    "asha@example.com",
		ContactMobile:   "+91 9800000000",
		GrandTotalCents: 150000,
		Currency:        "INR",
		Status:          order.StatusSubmitted,
	})
}

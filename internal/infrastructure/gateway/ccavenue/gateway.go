// Package ccavenue implements the shared-secret encrypted request/response
// protocol of the CCAvenue payment gateway: building the encrypted merchant_data
// payload for outbound requests and decoding the encrypted callback that
// reports the payment outcome.
package ccavenue

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/orris-inc/paygate/internal/shared/config"
	apperrors "github.com/orris-inc/paygate/internal/shared/errors"
)

const (
	testEndpoint = "https://test.ccavenue.com/transaction/transaction.do"
	liveEndpoint = "https://secure.ccavenue.com/transaction/transaction.do"
)

// Order statuses reported by the gateway in the callback payload.
const (
	OrderStatusSuccess = "Success"
	OrderStatusFailure = "Failure"
	OrderStatusAborted = "Aborted"
)

// ErrVerification is returned when a callback payload cannot be verified.
// Callers must not surface its detail to end users.
var ErrVerification = errors.New("payment verification failed")

// optionalFieldOrder is the fixed enumeration of optional merchant_data fields.
// Present fields are appended in exactly this order.
var optionalFieldOrder = []string{
	"billing_name", "billing_email", "billing_tel", "billing_address",
	"billing_city", "billing_state", "billing_zip", "billing_country",
	"delivery_name", "delivery_address", "delivery_city", "delivery_state",
	"delivery_zip", "delivery_country", "delivery_tel",
}

// RequestFields holds the payment-relevant order fields serialized into the
// merchant_data string. Amount must already be formatted with exactly 2
// fraction digits.
type RequestFields struct {
	OrderNo     string
	Amount      string
	Currency    string
	RedirectURL string
	CancelURL   string
	Language    string

	// Optional billing/delivery fields keyed by wire name; empty or absent
	// values are skipped.
	Optional map[string]string
}

// Envelope is the artifact handed to the caller to initiate a POST to the
// gateway. It deliberately carries no plaintext merchant_data.
type Envelope struct {
	GatewayURL string
	AccessCode string
	EncRequest string
}

// Callback is the decrypted, parsed field map of a gateway callback.
type Callback map[string]string

func (c Callback) OrderStatus() string {
	return c["order_status"]
}

func (c Callback) OrderNo() string {
	return c["order_id"]
}

func (c Callback) TrackingID() string {
	return c["tracking_id"]
}

func (c Callback) Amount() string {
	return c["amount"]
}

func (c Callback) FailureMessage() string {
	return c["failure_message"]
}

func (c Callback) IsSuccess() bool {
	return c.OrderStatus() == OrderStatusSuccess
}

// Gateway encodes requests and decodes callbacks for one merchant account.
// It is stateless; every method is safe for concurrent use.
type Gateway struct {
	cfg config.GatewayConfig
}

func NewGateway(cfg config.GatewayConfig) *Gateway {
	return &Gateway{cfg: cfg}
}

// EndpointURL returns the transaction endpoint for the configured mode.
func (g *Gateway) EndpointURL() string {
	if g.cfg.TestMode {
		return testEndpoint
	}
	return liveEndpoint
}

func (g *Gateway) checkConfigured() error {
	if !g.cfg.Enabled {
		return apperrors.NewValidationError("payment gateway is not enabled")
	}
	if g.cfg.MerchantID == "" || g.cfg.AccessCode == "" || g.cfg.WorkingKey == "" {
		return apperrors.NewInternalError("payment gateway credentials are incomplete")
	}
	return nil
}

// BuildRequest serializes the fields into the canonical merchant_data string,
// encrypts it under the working key and returns the envelope for the
// auto-submit form.
func (g *Gateway) BuildRequest(fields RequestFields) (*Envelope, error) {
	if err := g.checkConfigured(); err != nil {
		return nil, err
	}

	language := fields.Language
	if language == "" {
		language = "EN"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "merchant_id=%s&order_id=%s&amount=%s&currency=%s&redirect_url=%s&cancel_url=%s&language=%s",
		g.cfg.MerchantID, fields.OrderNo, fields.Amount, fields.Currency,
		fields.RedirectURL, fields.CancelURL, language)

	for _, name := range optionalFieldOrder {
		if value := fields.Optional[name]; value != "" {
			sb.WriteByte('&')
			sb.WriteString(name)
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(value))
		}
	}

	encRequest, err := EncryptData(sb.String(), g.cfg.WorkingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt merchant data: %w", err)
	}

	return &Envelope{
		GatewayURL: g.EndpointURL(),
		AccessCode: g.cfg.AccessCode,
		EncRequest: encRequest,
	}, nil
}

// DecodeCallback decrypts and parses an encrypted callback payload. The field
// map is returned as-is; required-field validation is the caller's concern.
func (g *Gateway) DecodeCallback(encResp string) (Callback, error) {
	if err := g.checkConfigured(); err != nil {
		return nil, err
	}

	plaintext, err := DecryptData(encResp, g.cfg.WorkingKey)
	if err != nil {
		return nil, fmt.Errorf("%w: decryption failed: %v", ErrVerification, err)
	}

	callback := make(Callback)
	for _, segment := range strings.Split(plaintext, "&") {
		key, value, found := strings.Cut(segment, "=")
		if !found {
			continue
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		callback[key] = value
	}

	return callback, nil
}

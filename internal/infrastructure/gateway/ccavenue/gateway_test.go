package ccavenue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/paygate/internal/shared/config"
	apperrors "github.com/orris-inc/paygate/internal/shared/errors"
)

func testGatewayConfig() config.GatewayConfig {
	return config.GatewayConfig{
		MerchantID:          "12345",
		AccessCode:          "AVXX00XX00",
		WorkingKey:          testWorkingKey,
		TestMode:            true,
		Enabled:             true,
		SupportedCurrencies: []string{"INR"},
	}
}

// decodeRequest decrypts an envelope's encRequest back to the merchant_data
// string so assertions can inspect the wire format.
func decodeRequest(t *testing.T, env *Envelope, workingKey string) string {
	t.Helper()
	plaintext, err := DecryptData(env.EncRequest, workingKey)
	require.NoError(t, err)
	return plaintext
}

func TestGateway_EndpointURL(t *testing.T) {
	cfg := testGatewayConfig()

	cfg.TestMode = true
	assert.Equal(t, "https://test.ccavenue.com/transaction/transaction.do", NewGateway(cfg).EndpointURL())

	cfg.TestMode = false
	assert.Equal(t, "https://secure.ccavenue.com/transaction/transaction.do", NewGateway(cfg).EndpointURL())
}

func TestGateway_BuildRequest(t *testing.T) {
	fields := RequestFields{
		OrderNo:     "ORD-001",
		Amount:      "1500.00",
		Currency:    "INR",
		RedirectURL: "https://shop.example.com/payments/ccavenue/callback",
		CancelURL:   "https://shop.example.com/payments/ccavenue/cancel",
	}

	t.Run("serializes mandatory fields in fixed order", func(t *testing.T) {
		gw := NewGateway(testGatewayConfig())

		env, err := gw.BuildRequest(fields)
		require.NoError(t, err)

		plaintext := decodeRequest(t, env, testWorkingKey)
		assert.Equal(t,
			"merchant_id=12345&order_id=ORD-001&amount=1500.00&currency=INR"+
				"&redirect_url=https://shop.example.com/payments/ccavenue/callback"+
				"&cancel_url=https://shop.example.com/payments/ccavenue/cancel"+
				"&language=EN",
			plaintext)
	})

	t.Run("envelope carries access code and test endpoint", func(t *testing.T) {
		gw := NewGateway(testGatewayConfig())

		env, err := gw.BuildRequest(fields)
		require.NoError(t, err)

		assert.Equal(t, "AVXX00XX00", env.AccessCode)
		assert.Equal(t, "https://test.ccavenue.com/transaction/transaction.do", env.GatewayURL)
		assert.NotEmpty(t, env.EncRequest)
	})

	t.Run("appends optional fields in enumeration order with escaping", func(t *testing.T) {
		gw := NewGateway(testGatewayConfig())

		withOptional := fields
		withOptional.Optional = map[string]string{
			"billing_city": "Mumbai",
			"billing_name": "Asha Rao & Sons",
			"billing_tel":  "+91 9800000000",
		}

		env, err := gw.BuildRequest(withOptional)
		require.NoError(t, err)

		plaintext := decodeRequest(t, env, testWorkingKey)
		suffix := "&billing_name=Asha+Rao+%26+Sons&billing_tel=%2B91+9800000000&billing_city=Mumbai"
		assert.True(t, strings.HasSuffix(plaintext, suffix), "got %q", plaintext)
	})

	t.Run("skips empty optional values", func(t *testing.T) {
		gw := NewGateway(testGatewayConfig())

		withOptional := fields
		withOptional.Optional = map[string]string{
			"billing_name":  "Asha Rao",
			"billing_email": "",
		}

		env, err := gw.BuildRequest(withOptional)
		require.NoError(t, err)

		plaintext := decodeRequest(t, env, testWorkingKey)
		assert.NotContains(t, plaintext, "billing_email")
	})

	t.Run("honours a non-default language", func(t *testing.T) {
		gw := NewGateway(testGatewayConfig())

		localized := fields
		localized.Language = "HI"

		env, err := gw.BuildRequest(localized)
		require.NoError(t, err)

		plaintext := decodeRequest(t, env, testWorkingKey)
		assert.True(t, strings.HasSuffix(plaintext, "&language=HI"))
	})

	t.Run("fails when the gateway is disabled", func(t *testing.T) {
		cfg := testGatewayConfig()
		cfg.Enabled = false
		gw := NewGateway(cfg)

		_, err := gw.BuildRequest(fields)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("fails when credentials are incomplete", func(t *testing.T) {
		cfg := testGatewayConfig()
		cfg.WorkingKey = ""
		gw := NewGateway(cfg)

		_, err := gw.BuildRequest(fields)
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	})
}

func TestGateway_DecodeCallback(t *testing.T) {
	gw := NewGateway(testGatewayConfig())

	encode := func(t *testing.T, plaintext string) string {
		t.Helper()
		enc, err := EncryptData(plaintext, testWorkingKey)
		require.NoError(t, err)
		return enc
	}

	t.Run("parses a successful callback", func(t *testing.T) {
		encResp := encode(t, "order_id=ORD-001&tracking_id=TRK-9&order_status=Success&amount=1500.00")

		callback, err := gw.DecodeCallback(encResp)
		require.NoError(t, err)

		assert.Equal(t, "ORD-001", callback.OrderNo())
		assert.Equal(t, "TRK-9", callback.TrackingID())
		assert.Equal(t, "Success", callback.OrderStatus())
		assert.Equal(t, "1500.00", callback.Amount())
		assert.True(t, callback.IsSuccess())
	})

	t.Run("unescapes plus-encoded values", func(t *testing.T) {
		encResp := encode(t, "order_id=ORD-002&order_status=Failure&failure_message=Insufficient+Funds")

		callback, err := gw.DecodeCallback(encResp)
		require.NoError(t, err)

		assert.Equal(t, "Insufficient Funds", callback.FailureMessage())
		assert.False(t, callback.IsSuccess())
	})

	t.Run("skips segments without a separator", func(t *testing.T) {
		encResp := encode(t, "garbage&order_id=ORD-003&order_status=Aborted")

		callback, err := gw.DecodeCallback(encResp)
		require.NoError(t, err)

		assert.Equal(t, "ORD-003", callback.OrderNo())
		assert.Equal(t, OrderStatusAborted, callback.OrderStatus())
		_, present := callback["garbage"]
		assert.False(t, present)
	})

	t.Run("keeps the raw value when unescaping fails", func(t *testing.T) {
		encResp := encode(t, "order_id=ORD-004&failure_message=bad%zzescape")

		callback, err := gw.DecodeCallback(encResp)
		require.NoError(t, err)

		assert.Equal(t, "bad%zzescape", callback.FailureMessage())
	})

	t.Run("wraps decryption failures in ErrVerification", func(t *testing.T) {
		_, err := gw.DecodeCallback("deadbeef")
		assert.ErrorIs(t, err, ErrVerification)
	})

	t.Run("rejects a payload encrypted under a different key", func(t *testing.T) {
		foreign, err := EncryptData("order_id=ORD-005&order_status=Success", "fedcba9876543210")
		require.NoError(t, err)

		_, err = gw.DecodeCallback(foreign)
		assert.ErrorIs(t, err, ErrVerification)
	})

	t.Run("fails when the gateway is disabled", func(t *testing.T) {
		cfg := testGatewayConfig()
		cfg.Enabled = false

		_, err := NewGateway(cfg).DecodeCallback("deadbeef")
		assert.Error(t, err)
	})
}

func TestGateway_RoundTrip(t *testing.T) {
	gw := NewGateway(testGatewayConfig())

	env, err := gw.BuildRequest(RequestFields{
		OrderNo:     "ORD-RT",
		Amount:      "42.00",
		Currency:    "INR",
		RedirectURL: "https://shop.example.com/cb",
		CancelURL:   "https://shop.example.com/cancel",
	})
	require.NoError(t, err)

	// The callback decoder accepts anything encrypted under the working key,
	// so a built request parses back into its own fields.
	callback, err := gw.DecodeCallback(env.EncRequest)
	require.NoError(t, err)

	assert.Equal(t, "ORD-RT", callback.OrderNo())
	assert.Equal(t, "42.00", callback.Amount())
	assert.Equal(t, "INR", callback["currency"])
}

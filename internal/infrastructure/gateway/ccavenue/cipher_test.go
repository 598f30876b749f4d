package ccavenue

import (
	"encoding/hex"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWorkingKey = "0123456789abcdef" // 16 bytes, AES-128

func TestEncryptData(t *testing.T) {
	t.Run("produces lowercase hex output", func(t *testing.T) {
		out, err := EncryptData("merchant_id=123&order_id=ORD-1", testWorkingKey)
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]+$`), out)
		assert.Zero(t, len(out)%32, "each 16-byte block encodes to 32 hex chars")
	})

	t.Run("is deterministic for identical input and key", func(t *testing.T) {
		first, err := EncryptData("order_id=ORD-1&amount=100.00", testWorkingKey)
		require.NoError(t, err)
		second, err := EncryptData("order_id=ORD-1&amount=100.00", testWorkingKey)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("different keys produce different ciphertext", func(t *testing.T) {
		first, err := EncryptData("order_id=ORD-1", testWorkingKey)
		require.NoError(t, err)
		second, err := EncryptData("order_id=ORD-1", "fedcba9876543210")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("rejects a working key of invalid length", func(t *testing.T) {
		_, err := EncryptData("data", "short-key")
		assert.Error(t, err)
	})

	t.Run("supports 16, 24 and 32 byte keys", func(t *testing.T) {
		keys := []string{
			strings.Repeat("k", 16),
			strings.Repeat("k", 24),
			strings.Repeat("k", 32),
		}
		for _, key := range keys {
			out, err := EncryptData("order_id=ORD-1", key)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		}
	})

	t.Run("empty plaintext still emits one padded block", func(t *testing.T) {
		out, err := EncryptData("", testWorkingKey)
		require.NoError(t, err)
		assert.Len(t, out, 32)
	})
}

func TestDecryptData(t *testing.T) {
	t.Run("round trips arbitrary plaintext", func(t *testing.T) {
		plaintexts := []string{
			"order_id=ORD-1&amount=100.00&currency=INR",
			"a",
			strings.Repeat("x", 15),
			strings.Repeat("x", 16),
			strings.Repeat("x", 17),
			"non-ascii ₹ value & escaped%3Dchars",
		}
		for _, plaintext := range plaintexts {
			enc, err := EncryptData(plaintext, testWorkingKey)
			require.NoError(t, err)

			dec, err := DecryptData(enc, testWorkingKey)
			require.NoError(t, err)
			assert.Equal(t, plaintext, dec)
		}
	})

	t.Run("rejects invalid hex", func(t *testing.T) {
		_, err := DecryptData("not-hex-at-all!", testWorkingKey)
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("rejects empty ciphertext", func(t *testing.T) {
		_, err := DecryptData("", testWorkingKey)
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("rejects ciphertext not a multiple of the block size", func(t *testing.T) {
		_, err := DecryptData("abcdef", testWorkingKey)
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("rejects tampered ciphertext", func(t *testing.T) {
		enc, err := EncryptData("order_id=ORD-1", testWorkingKey)
		require.NoError(t, err)

		// Flip one bit in the last block to corrupt the padding.
		raw, err := hex.DecodeString(enc)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0x01
		tampered := hex.EncodeToString(raw)

		_, err = DecryptData(tampered, testWorkingKey)
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("wrong key fails padding validation", func(t *testing.T) {
		enc, err := EncryptData("order_id=ORD-1&amount=100.00", testWorkingKey)
		require.NoError(t, err)

		_, err = DecryptData(enc, "fedcba9876543210")
		assert.ErrorIs(t, err, ErrDecrypt)
	})
}

func TestPkcs7Unpad(t *testing.T) {
	t.Run("rejects padding larger than block", func(t *testing.T) {
		data := append([]byte(strings.Repeat("x", 15)), byte(17))
		_, err := pkcs7Unpad(data, 16)
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("rejects zero padding byte", func(t *testing.T) {
		data := append([]byte(strings.Repeat("x", 15)), 0x00)
		_, err := pkcs7Unpad(data, 16)
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("rejects inconsistent padding bytes", func(t *testing.T) {
		data := append([]byte(strings.Repeat("x", 12)), 0x02, 0x03, 0x04, 0x04)
		_, err := pkcs7Unpad(data, 16)
		assert.ErrorIs(t, err, ErrDecrypt)
	})
}

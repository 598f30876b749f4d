package ccavenue

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrDecrypt is returned when a ciphertext cannot be decrypted: bad hex,
// wrong length, or malformed padding.
var ErrDecrypt = errors.New("decrypt failed")

// fixedIV is the constant initialization vector mandated by the gateway's
// reference implementation. It is shared across all operations and must not
// be randomized; the gateway cannot decrypt requests encrypted with any other IV.
var fixedIV = []byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
}

// EncryptData encrypts plaintext with AES-CBC under the raw UTF-8 bytes of
// workingKey (16, 24 or 32 bytes select AES-128/192/256) and returns the
// lowercase hex encoding of the ciphertext. The output is deterministic for
// identical inputs.
func EncryptData(plaintext, workingKey string) (string, error) {
	block, err := aes.NewCipher([]byte(workingKey))
	if err != nil {
		return "", fmt.Errorf("invalid working key: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	encrypted := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, fixedIV).CryptBlocks(encrypted, padded)

	return hex.EncodeToString(encrypted), nil
}

// DecryptData reverses EncryptData.
func DecryptData(hexCiphertext, workingKey string) (string, error) {
	block, err := aes.NewCipher([]byte(workingKey))
	if err != nil {
		return "", fmt.Errorf("invalid working key: %w", err)
	}

	encrypted, err := hex.DecodeString(hexCiphertext)
	if err != nil {
		return "", fmt.Errorf("%w: invalid hex encoding", ErrDecrypt)
	}
	if len(encrypted) == 0 || len(encrypted)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size", ErrDecrypt, len(encrypted))
	}

	decrypted := make([]byte, len(encrypted))
	cipher.NewCBCDecrypter(block, fixedIV).CryptBlocks(decrypted, encrypted)

	unpadded, err := pkcs7Unpad(decrypted, aes.BlockSize)
	if err != nil {
		return "", err
	}

	return string(unpadded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty plaintext", ErrDecrypt)
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, fmt.Errorf("%w: malformed padding", ErrDecrypt)
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("%w: malformed padding", ErrDecrypt)
		}
	}
	return data[:len(data)-padding], nil
}

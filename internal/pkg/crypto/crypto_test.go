package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestNewCodec_RejectsBadKeys(t *testing.T) {
	_, err := NewCodec("not-hex")
	assert.Error(t, err)

	_, err = NewCodec("aabbcc")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestEncryptDecryptField_RoundTrip(t *testing.T) {
	codec, err := NewCodec(testKey)
	require.NoError(t, err)

	encrypted, err := codec.EncryptField("1234567890123456")
	require.NoError(t, err)
	assert.Contains(t, encrypted, ":")
	assert.NotContains(t, encrypted, "1234567890123456")

	decrypted, err := codec.DecryptField(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "1234567890123456", decrypted)
}

func TestEncryptField_UniqueIVPerCall(t *testing.T) {
	codec, err := NewCodec(testKey)
	require.NoError(t, err)

	first, err := codec.EncryptField("HDFC0001234")
	require.NoError(t, err)
	second, err := codec.EncryptField("HDFC0001234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDecryptField_EmptyAndMalformed(t *testing.T) {
	codec, err := NewCodec(testKey)
	require.NoError(t, err)

	decrypted, err := codec.DecryptField("")
	assert.NoError(t, err)
	assert.Equal(t, "", decrypted)

	_, err = codec.DecryptField("no-separator")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = codec.DecryptField("zz:zz")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestDocumentRoundTrip(t *testing.T) {
	codec, err := NewCodec(testKey)
	require.NoError(t, err)

	original := []byte(strings.Repeat("payslip-bytes-", 100))
	blob, err := codec.EncryptDocument(original)
	require.NoError(t, err)

	encoded, err := codec.DecryptDocumentBase64(blob)
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecryptDocumentBase64_TooShort(t *testing.T) {
	codec, err := NewCodec(testKey)
	require.NoError(t, err)

	_, err = codec.DecryptDocumentBase64([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

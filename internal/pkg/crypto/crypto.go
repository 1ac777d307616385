package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Codec encrypts and decrypts sensitive fields (bank account numbers, IFSC
// codes) and uploaded documents. AES-256-CBC with a random IV per value; the
// string form is "<iv hex>:<ciphertext hex>", document blobs are IV-prefixed
// raw bytes.
type Codec struct {
	key []byte
}

var (
	ErrInvalidKey        = errors.New("encryption key must be 32 bytes")
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
)

// NewCodec builds a Codec from a hex-encoded 32-byte key.
func NewCodec(hexKey string) (*Codec, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}
	if len(key) != 32 {
		return nil, ErrInvalidKey
	}
	return &Codec{key: key}, nil
}

// EncryptField encrypts a string field into "<iv hex>:<ciphertext hex>".
func (c *Codec) EncryptField(plaintext string) (string, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	ciphertext, err := c.encryptCBC([]byte(plaintext), iv)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

// DecryptField reverses EncryptField. An empty input decrypts to "".
func (c *Codec) DecryptField(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil
	}

	parts := strings.SplitN(encrypted, ":", 2)
	if len(parts) != 2 {
		return "", ErrInvalidCiphertext
	}
	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != aes.BlockSize {
		return "", ErrInvalidCiphertext
	}
	ciphertext, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", ErrInvalidCiphertext
	}

	plaintext, err := c.decryptCBC(ciphertext, iv)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptDocument encrypts a document blob; the IV is prepended to the result.
func (c *Codec) EncryptDocument(data []byte) ([]byte, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	ciphertext, err := c.encryptCBC(data, iv)
	if err != nil {
		return nil, err
	}
	return append(iv, ciphertext...), nil
}

// DecryptDocumentBase64 decrypts an IV-prefixed blob and returns it base64
// encoded for transport to the frontend.
func (c *Codec) DecryptDocumentBase64(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if len(data) < aes.BlockSize {
		return "", ErrInvalidCiphertext
	}

	plaintext, err := c.decryptCBC(data[aes.BlockSize:], data[:aes.BlockSize])
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(plaintext), nil
}

func (c *Codec) encryptCBC(plaintext, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

func (c *Codec) decryptCBC(ciphertext, iv []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrInvalidCiphertext
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return pkcs7Unpad(plaintext, aes.BlockSize)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidCiphertext
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, ErrInvalidCiphertext
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, ErrInvalidCiphertext
		}
	}
	return data[:len(data)-padding], nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-mood-journal/models"
	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// blobVersionAESGCM tags blobs sealed with AES-256-GCM and a 12-byte
	// nonce. New formats get a new version byte.
	blobVersionAESGCM byte = 1

	keyDerivationInfo = "go-mood-journal content key v1"
)

// aesGCMCodec is the AES-256-GCM implementation of [FieldCodec].
//
// Blob layout before base64 (standard encoding):
//
//	version (1 byte) ‖ nonce (12 bytes) ‖ ciphertext ‖ tag (16 bytes)
type aesGCMCodec struct {
	aead cipher.AEAD
	rand io.Reader
}

// NewFieldCodec builds a [FieldCodec] from a 32-byte key.
// Use [DeriveKey] to turn a configured secret into such a key.
func NewFieldCodec(key []byte) (FieldCodec, error) {
	return newFieldCodec(key, rand.Reader)
}

func newFieldCodec(key []byte, random io.Reader) (*aesGCMCodec, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("content key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesGCMCodec{aead: gcm, rand: random}, nil
}

// DeriveKey turns the configured content secret into an AES-256 key.
//
// A secret that is valid standard base64 and decodes to exactly 32 bytes is
// used as-is. Any other non-empty secret is stretched with HKDF-SHA256.
func DeriveKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}

	if raw, err := base64.StdEncoding.DecodeString(secret); err == nil && len(raw) == KeySize {
		return raw, nil
	}

	key := make([]byte, KeySize)
	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(keyDerivationInfo))
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive content key: %w", err)
	}

	return key, nil
}

// Encrypt implements [FieldCodec].
func (c *aesGCMCodec) Encrypt(plaintext string) (models.CipheredContent, error) {
	nonceSize := c.aead.NonceSize()

	blob := make([]byte, 1+nonceSize, 1+nonceSize+len(plaintext)+c.aead.Overhead())
	blob[0] = blobVersionAESGCM

	nonce := blob[1 : 1+nonceSize]
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// the version byte is bound as additional data so it cannot be swapped
	blob = c.aead.Seal(blob, nonce, []byte(plaintext), []byte{blobVersionAESGCM})

	return models.CipheredContent(base64.StdEncoding.EncodeToString(blob)), nil
}

// Decrypt implements [FieldCodec].
func (c *aesGCMCodec) Decrypt(ciphered models.CipheredContent) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(string(ciphered))
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < 1+nonceSize+c.aead.Overhead() {
		return "", fmt.Errorf("%w: blob too short", ErrDecryption)
	}

	if blob[0] != blobVersionAESGCM {
		return "", fmt.Errorf("%w: unknown blob version %d", ErrDecryption, blob[0])
	}

	nonce, ciphertext := blob[1:1+nonceSize], blob[1+nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, []byte{blobVersionAESGCM})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return string(plaintext), nil
}

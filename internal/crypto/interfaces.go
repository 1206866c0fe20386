// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-mood-journal/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// FieldCodec encrypts and decrypts a single sensitive text field.
//
// Implementations are stateless apart from the key and safe for concurrent
// use. The output of Encrypt is self-describing: Decrypt needs nothing but
// the blob and the same key.
type FieldCodec interface {
	// Encrypt seals plaintext with a fresh random nonce. Two calls with the
	// same plaintext produce different blobs.
	Encrypt(plaintext string) (models.CipheredContent, error)

	// Decrypt opens a blob produced by Encrypt. Any failure is reported as
	// an error wrapping [ErrDecryption].
	Decrypt(blob models.CipheredContent) (string, error)
}

// PasswordHasher produces and verifies one-way password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

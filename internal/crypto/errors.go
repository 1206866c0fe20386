// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryption is returned when a stored blob cannot be turned back into
	// plaintext: malformed encoding, truncated data, unknown format version
	// or an authentication tag mismatch (wrong key or tampering).
	ErrDecryption = errors.New("content decryption failed")

	ErrEmptyKey          = errors.New("content key is empty")
	ErrInvalidHashFormat = errors.New("invalid password hash format")
)

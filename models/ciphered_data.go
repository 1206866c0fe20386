// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CipheredContent is the at-rest representation of a journal entry body.
//
// It is a self-describing, base64-encoded blob produced by the field codec
// (version byte, nonce and sealed ciphertext). The database treats it as an
// opaque string and never filters, orders or compares on it.
type CipheredContent string

// ContentStatus tells a caller how to interpret [JournalEntry.Content].
type ContentStatus string

const (
	// ContentAvailable means Content holds the decrypted plaintext.
	ContentAvailable ContentStatus = "available"

	// ContentUnavailable means the stored ciphertext could not be decrypted
	// and Content holds [ContentUnavailablePlaceholder].
	ContentUnavailable ContentStatus = "unavailable"

	// ContentEncrypted means decryption was skipped on purpose (bulk
	// listings) and Content holds [EncryptedContentMarker].
	ContentEncrypted ContentStatus = "encrypted"
)

const (
	// ContentUnavailablePlaceholder substitutes content that failed to decrypt.
	ContentUnavailablePlaceholder = "[content unavailable]"

	// EncryptedContentMarker substitutes content in summary listings.
	EncryptedContentMarker = "stored / encrypted"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// JournalEntry is a single private text entry written by a user.
//
// Content is plaintext only in memory. Storages encrypt it before it reaches
// a repository and decrypt it after it is read back, so repositories only
// ever see [StoredJournalEntry].
type JournalEntry struct {
	// ID is assigned by the database on creation.
	ID int64 `json:"id"`

	// UserID is the owner. It is taken from the authenticated principal and
	// never changes after creation.
	UserID int64 `json:"user"`

	// Content is the rich-text body of the entry (may embed markup).
	Content string `json:"content"`

	// ContentStatus reports whether Content is plaintext, a placeholder for
	// undecryptable data, or the bulk-listing marker.
	ContentStatus ContentStatus `json:"content_status"`

	// CreatedAt is set once on creation.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every successful content mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID returns the owner of the entry.
func (j JournalEntry) OwnerID() int64 {
	return j.UserID
}

// StoredJournalEntry is the persisted shape of a [JournalEntry]: identical
// metadata, encrypted body.
type StoredJournalEntry struct {
	ID        int64
	UserID    int64
	Content   CipheredContent
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID returns the owner of the stored entry.
func (s StoredJournalEntry) OwnerID() int64 {
	return s.UserID
}

// JournalEntryUpdate describes a content change of one entry.
// A nil Content leaves the body untouched (PATCH without content).
type JournalEntryUpdate struct {
	ID      int64   `json:"-"`
	UserID  int64   `json:"-"`
	Content *string `json:"content,omitempty"`
}

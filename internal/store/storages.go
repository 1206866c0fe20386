// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
)

// Storages groups every persistence component the service layer depends on.
type Storages struct {
	UserRepository UserRepository
	JournalStorage JournalStorage
	MoodLogStorage MoodLogStorage
}

// NewStorages wires repositories and storages over a single [DB].
func NewStorages(db *DB, codec crypto.FieldCodec, recorder DecryptionRecorder, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		JournalStorage: NewJournalStorage(NewJournalRepository(db, logger), codec, recorder, logger),
		MoodLogStorage: NewMoodLogStorage(NewMoodLogRepository(db, logger), logger),
	}
}

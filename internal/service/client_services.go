// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-mood-journal/internal/adapter"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
)

// ClientServices groups the terminal client's services. They all share one
// [adapter.ServerAdapter] and therefore one session token.
type ClientServices struct {
	AuthService    ClientAuthService
	JournalService ClientJournalService
	MoodService    ClientMoodService
	InfoService    ClientInfoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, logger),
		JournalService: NewClientJournalService(serverAdapter),
		MoodService:    NewClientMoodService(serverAdapter),
		InfoService:    NewClientInfoService(serverAdapter),
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/service"
)

// DefaultStatusInterval is used when a non-positive interval is given.
const DefaultStatusInterval = 30 * time.Second

// ServerStatus is the outcome of one server check.
type ServerStatus struct {
	Online    bool
	Version   string
	CheckedAt time.Time
	Err       error
}

// ServerStatusWorker polls the server version endpoint and reports whether
// the server answers. The first check runs immediately.
type ServerStatusWorker struct {
	info     service.ClientInfoService
	interval time.Duration
	report   func(ServerStatus)
	logger   *logger.Logger

	now func() time.Time
}

func NewServerStatusWorker(info service.ClientInfoService, interval time.Duration, report func(ServerStatus), logger *logger.Logger) *ServerStatusWorker {
	if interval <= 0 {
		interval = DefaultStatusInterval
	}
	return &ServerStatusWorker{
		info:     info,
		interval: interval,
		report:   report,
		logger:   logger,
		now:      time.Now,
	}
}

func (w *ServerStatusWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	online := true
	for {
		status := w.check(ctx)
		if ctx.Err() != nil {
			return
		}
		if status.Online != online {
			online = status.Online
			w.logger.Info().Bool("online", online).Err(status.Err).Msg("server availability changed")
		}
		w.report(status)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (w *ServerStatusWorker) check(ctx context.Context) ServerStatus {
	checkCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	version, err := w.info.ServerVersion(checkCtx)
	return ServerStatus{
		Online:    err == nil,
		Version:   version.Version,
		CheckedAt: w.now(),
		Err:       err,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/mock"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingWorker counts runs and blocks until its context ends.
type countingWorker struct {
	runs    atomic.Int32
	stopped atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
	c.stopped.Add(1)
}

func TestWorkers_StartStop(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2)

	ws.Start(context.Background())
	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	ws.Stop()
	assert.Equal(t, int32(1), w1.stopped.Load())
	assert.Equal(t, int32(1), w2.stopped.Load())
}

func TestWorkers_StartRestarts(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ws.Start(context.Background())
	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, int32(2), w.runs.Load())
	assert.Equal(t, int32(2), w.stopped.Load())
}

func TestWorkers_StopWithoutStart(t *testing.T) {
	ws := NewWorkers()
	ws.Stop()
	ws.Stop()
}

func TestWorkers_ParentCancel(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ctx, cancel := context.WithCancel(context.Background())
	ws.Start(ctx)
	cancel()

	require.Eventually(t, func() bool { return w.stopped.Load() == 1 }, time.Second, 5*time.Millisecond)
	ws.Stop()
}

func TestServerStatusWorker_ReportsOnlineThenOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	info := mock.NewMockClientInfoService(ctrl)

	gomock.InOrder(
		info.EXPECT().ServerVersion(gomock.Any()).Return(models.VersionResponse{Version: "v1.0.0"}, nil),
		info.EXPECT().ServerVersion(gomock.Any()).Return(models.VersionResponse{}, errors.New("connection refused")).AnyTimes(),
	)

	var (
		mu      sync.Mutex
		reports []ServerStatus
	)
	worker := NewServerStatusWorker(info, 10*time.Millisecond, func(s ServerStatus) {
		mu.Lock()
		defer mu.Unlock()
		reports = append(reports, s)
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(reports) >= 2
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, reports[0].Online)
	assert.Equal(t, "v1.0.0", reports[0].Version)
	assert.False(t, reports[0].CheckedAt.IsZero())
	assert.False(t, reports[1].Online)
	assert.Error(t, reports[1].Err)
}

func TestNewServerStatusWorker_DefaultInterval(t *testing.T) {
	w := NewServerStatusWorker(nil, 0, func(ServerStatus) {}, logger.Nop())
	assert.Equal(t, DefaultStatusInterval, w.interval)
}

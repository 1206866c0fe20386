// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/handler"
	myGRPC "github.com/MKhiriev/go-mood-journal/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-mood-journal/internal/handler/http"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

const loopback = "127.0.0.1:0"

func newTestHandlers(cfg config.Server) *handler.Handlers {
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, nil, cfg, logger.Nop()),
		GRPC: myGRPC.NewHandler(okPinger{}, logger.Nop()),
	}
}

func TestNewServer_NothingConfigured(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_HTTPOnly(t *testing.T) {
	cfg := config.Server{HTTPAddress: loopback}
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())

	require.NoError(t, err)
	s := srv.(*server)
	assert.NotNil(t, s.httpServer)
	assert.Nil(t, s.gRPCServer)
}

func TestServer_RunAndShutdown(t *testing.T) {
	cfg := config.Server{HTTPAddress: loopback, GRPCAddress: loopback}
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	// Bind up front to learn the ephemeral ports; Run reuses the listeners.
	require.NoError(t, s.httpServer.Listen())
	require.NoError(t, s.gRPCServer.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	httpURL := "http://" + s.httpServer.Addr() + "/api/unknown"
	require.Eventually(t, func() bool {
		resp, err := http.Get(httpURL)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 3*time.Second, 20*time.Millisecond)

	conn, err := grpc.NewClient(s.gRPCServer.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	require.Eventually(t, func() bool {
		rctx, rcancel := context.WithTimeout(context.Background(), time.Second)
		defer rcancel()
		resp, err := client.Check(rctx, &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get(httpURL)
	assert.Error(t, err, "listener closed after shutdown")
}

func TestServer_RunFailsWhenPortBusy(t *testing.T) {
	busy, err := net.Listen("tcp", loopback)
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())
	require.ErrorIs(t, err, errListen)
}

func TestServer_ShutdownIdempotent(t *testing.T) {
	cfg := config.Server{HTTPAddress: loopback}
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		srv.Shutdown()
		srv.Shutdown()
	})
}

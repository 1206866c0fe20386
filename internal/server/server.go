// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/handler"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

// NewServer creates a transport for every handler present in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) transports() []transport {
	var list []transport
	if s.httpServer != nil {
		list = append(list, s.httpServer)
	}
	if s.gRPCServer != nil {
		list = append(list, s.gRPCServer)
	}
	return list
}

func (s *server) Run(ctx context.Context) error {
	transports := s.transports()
	if len(transports) == 0 {
		return errNoServersAreCreated
	}

	for _, t := range transports {
		if err := t.Listen(); err != nil {
			return fmt.Errorf("%w: %w", errListen, err)
		}
	}

	var wg sync.WaitGroup
	for _, t := range transports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			t.RunServer()
		}()
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, t := range s.transports() {
			t.Shutdown()
		}
	})
}

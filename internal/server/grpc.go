// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	myGRPC "github.com/MKhiriev/go-mood-journal/internal/handler/grpc"
	"github.com/MKhiriev/go-mood-journal/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	watchCtx  context.Context
	stopWatch context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	watchCtx, stopWatch := context.WithCancel(context.Background())

	return &grpcServer{
		handler:   handler,
		address:   cfg.GRPCAddress,
		server:    server,
		watchCtx:  watchCtx,
		stopWatch: stopWatch,
		logger:    logger,
	}
}

func (g *grpcServer) Listen() error {
	if g.gRPCNetListener != nil {
		return nil
	}

	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	g.gRPCNetListener = listener
	return nil
}

func (g *grpcServer) Addr() string {
	if g.gRPCNetListener == nil {
		return g.address
	}
	return g.gRPCNetListener.Addr().String()
}

// RunServer keeps the health status in sync with the database while serving.
func (g *grpcServer) RunServer() {
	go g.handler.Watch(g.watchCtx, myGRPC.DefaultCheckInterval)

	g.logger.Info().Str("address", g.Addr()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopWatch()
	g.handler.Shutdown()
	g.server.GracefulStop()
}

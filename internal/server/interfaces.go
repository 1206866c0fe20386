// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the combined HTTP and gRPC server.
type Server interface {
	// Run binds every enabled transport, serves until ctx is done and then
	// shuts down. A bind failure is returned before anything is served.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every running transport.
	Shutdown()
}

// transport is one listener-backed server managed by [Server].
type transport interface {
	// Listen binds the configured address. It is a no-op once bound.
	Listen() error

	// RunServer serves on the bound listener and blocks until stopped.
	RunServer()

	Shutdown()
}

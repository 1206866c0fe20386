// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the journal server's transports.
//
// It binds the HTTP API and the gRPC health service, serves them until the
// context is cancelled, and then shuts both down gracefully.
package server

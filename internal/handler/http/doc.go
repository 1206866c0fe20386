// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the journal server.
//
// It wires the chi router, decodes request bodies and path/query parameters,
// and maps service errors to status codes. Authentication, trace ids, access
// logging, CORS, rate limiting and compression are handled by middleware
// before a request reaches the service layer.
package http

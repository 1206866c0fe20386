// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (a .env file is loaded by the server binary)
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied after merging. The main entry points are
// [GetStructuredConfig] for the server and [GetClientConfig] for the
// terminal client.
package config

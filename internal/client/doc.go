// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It alternates between the login flow and the journal screens, logs out on
// request or when the session expires, and runs background workers while
// the journal screens are open.
package client

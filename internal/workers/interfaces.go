// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the terminal client's background jobs.
// It defines the Worker interface and a Workers aggregate that starts
// several workers together and stops them as one.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is canceled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

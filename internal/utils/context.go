// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// typed context keys, JWT issuing and parsing, JSON response writing and the
// resty HTTP client constructor.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys of other packages
// can never collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey holds the authenticated user id (int64) placed by the auth
// middleware.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID as the authenticated user.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the authenticated user id and whether one of
// the right type was found.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

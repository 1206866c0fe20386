// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mood-journal/internal/guard"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
)

// principalFromContext returns the authenticated principal placed into ctx by
// the auth middleware.
func principalFromContext(ctx context.Context) (guard.Principal, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	principal := guard.Principal{UserID: userID}
	if !ok || !principal.Authenticated() {
		return guard.Principal{}, ErrUnauthenticated
	}

	return principal, nil
}

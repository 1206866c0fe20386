// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-mood-journal/internal/utils"
)

// moodInsights aggregates the caller's mood logs in the optional date range.
func (h *Handler) moodInsights(w http.ResponseWriter, r *http.Request) {
	filter, err := dateRangeFilter(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	insights, err := h.services.InsightsService.MoodInsights(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, insights, http.StatusOK)
}

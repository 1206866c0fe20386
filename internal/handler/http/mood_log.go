// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-mood-journal/internal/utils"
	"github.com/MKhiriev/go-mood-journal/models"
)

func (h *Handler) listMoodLogs(w http.ResponseWriter, r *http.Request) {
	filter, err := dateRangeFilter(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logs, err := h.services.MoodLogService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if logs == nil {
		logs = []models.MoodLog{}
	}
	utils.WriteJSON(w, logs, http.StatusOK)
}

func (h *Handler) createMoodLog(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMoodLogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	// A missing rating stays zero and is rejected by validation.
	var moodLog models.MoodLog
	if req.MoodRating != nil {
		moodLog.MoodRating = *req.MoodRating
	}

	created, err := h.services.MoodLogService.Create(r.Context(), moodLog)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getMoodLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	moodLog, err := h.services.MoodLogService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, moodLog, http.StatusOK)
}

func (h *Handler) deleteMoodLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.MoodLogService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

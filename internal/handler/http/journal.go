// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-mood-journal/internal/utils"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

func (h *Handler) listJournalEntries(w http.ResponseWriter, r *http.Request) {
	var (
		entries []models.JournalEntry
		err     error
	)
	if summaryRequested(r) {
		entries, err = h.services.JournalService.ListSummaries(r.Context())
	} else {
		entries, err = h.services.JournalService.List(r.Context())
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if entries == nil {
		entries = []models.JournalEntry{}
	}
	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) createJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJournalEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	var entry models.JournalEntry
	if req.Content != nil {
		entry.Content = *req.Content
	}

	created, err := h.services.JournalService.Create(r.Context(), entry)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getJournalEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	entry, err := h.services.JournalService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

// updateJournalEntry serves PUT and PATCH. PUT replaces the content and so
// requires it; a PATCH without content leaves the entry untouched.
func (h *Handler) updateJournalEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req models.CreateJournalEntryRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if r.Method == http.MethodPut && req.Content == nil {
		writeServiceError(w, r, &validators.FieldError{Field: validators.FieldContent, Err: validators.ErrEmptyContent})
		return
	}

	updated, err := h.services.JournalService.Update(r.Context(), models.JournalEntryUpdate{
		ID:      id,
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.JournalService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

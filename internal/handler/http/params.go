// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/go-chi/chi/v5"
)

// dateLayout is the calendar-day format of start_date and end_date.
const dateLayout = "2006-01-02"

// maxBodyBytes bounds request bodies. Journal content is the largest payload;
// the limit leaves room for JSON escaping so oversized content reaches the
// validator and fails on the content field.
const maxBodyBytes = validators.MaxContentBytes*2 + 1024

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID reads the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &validators.FieldError{Field: validators.FieldID, Err: validators.ErrInvalidID}
	}
	return id, nil
}

// dateRangeFilter reads the optional start_date and end_date query
// parameters. Both are calendar days in UTC; an absent one leaves that side
// of the range open.
func dateRangeFilter(r *http.Request) (models.MoodLogFilter, error) {
	var filter models.MoodLogFilter
	query := r.URL.Query()

	start, err := parseDate(query.Get(validators.FieldStartDate), validators.FieldStartDate)
	if err != nil {
		return filter, err
	}
	end, err := parseDate(query.Get(validators.FieldEndDate), validators.FieldEndDate)
	if err != nil {
		return filter, err
	}

	filter.StartDate = start
	filter.EndDate = end
	return filter, nil
}

func parseDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	day, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return nil, &validators.FieldError{Field: field, Err: validators.ErrInvalidDateRange}
	}
	return &day, nil
}

// summaryRequested reports whether ?summary= is a true boolean.
func summaryRequested(r *http.Request) bool {
	summary, err := strconv.ParseBool(r.URL.Query().Get("summary"))
	return err == nil && summary
}

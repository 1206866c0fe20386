// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"
)

const (
	uiDivider = "──────────────────────────────────────────────────────"

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

// fitText shortens v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// firstLine returns the first non-empty line of v.
func firstLine(v string) string {
	for _, line := range strings.Split(v, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateTimeLayout)
}

// parseDateInput parses a YYYY-MM-DD input. An empty input is an open bound.
func parseDateInput(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation(dateLayout, v, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("date %q must look like YYYY-MM-DD", v)
	}
	return &t, nil
}

func formatDateBound(t *time.Time) string {
	if t == nil {
		return "..."
	}
	return t.Format(dateLayout)
}

func describeRange(start, end *time.Time) string {
	if start == nil && end == nil {
		return "all time"
	}
	return formatDateBound(start) + " → " + formatDateBound(end)
}

// moodFace maps a 1..5 rating to a short label.
func moodFace(rating int) string {
	switch rating {
	case 1:
		return "awful"
	case 2:
		return "bad"
	case 3:
		return "okay"
	case 4:
		return "good"
	case 5:
		return "great"
	default:
		return "?"
	}
}

// bar renders count as a bar scaled against max into at most width cells.
func bar(count, max, width int) string {
	if count <= 0 || max <= 0 || width <= 0 {
		return ""
	}
	n := count * width / max
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

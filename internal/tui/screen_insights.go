// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const distributionWidth = 30

func (m mainLoopModel) updateInsightsBrowse(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.refresh):
		return m, m.reload()
	case key.Matches(keyMsg, keys.filter):
		return m.startRange()
	}
	return m, nil
}

func (m mainLoopModel) viewInsights() (string, string) {
	hotKeys := "f: date range │ r: refresh"

	var b strings.Builder
	b.WriteString("Range: ")
	b.WriteString(describeRange(m.start, m.end))
	b.WriteString("\n\n")

	if m.insights == nil {
		return b.String(), hotKeys
	}
	insights := *m.insights

	b.WriteString(fmt.Sprintf("Overall:  %s\n", insights.DominantMood))
	b.WriteString(fmt.Sprintf("Logs:     %d\n", insights.Count))
	if insights.Count == 0 {
		return strings.TrimRight(b.String(), "\n"), hotKeys
	}

	b.WriteString(fmt.Sprintf("Average:  %.2f\n", insights.Average))
	b.WriteString(fmt.Sprintf("Min/Max:  %d / %d\n", insights.Min, insights.Max))
	b.WriteString(fmt.Sprintf("Std dev:  %.2f\n\n", insights.StdDev))

	top := 0
	for _, n := range insights.Distribution {
		top = max(top, n)
	}
	for rating := models.MaxMoodRating; rating >= models.MinMoodRating; rating-- {
		n := insights.Distribution[rating]
		b.WriteString(fmt.Sprintf("%d %-5s │ %-*s %d\n", rating, moodFace(rating), distributionWidth, bar(n, top, distributionWidth), n))
	}

	return strings.TrimRight(b.String(), "\n"), hotKeys
}

func (m mainLoopModel) cmdLoadInsights() tea.Cmd {
	ctx, mood, start, end := m.ctx, m.services.MoodService, m.start, m.end
	return func() tea.Msg {
		insights, err := mood.Insights(ctx, start, end)
		return insightsLoadedMsg{insights: insights, err: err}
	}
}

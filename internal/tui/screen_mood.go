// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) currentMoodLog() (models.MoodLog, bool) {
	if m.moodIdx < 0 || m.moodIdx >= len(m.moodLogs) {
		return models.MoodLog{}, false
	}
	return m.moodLogs[m.moodIdx], true
}

func (m mainLoopModel) updateMoodResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case moodLogsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.moodLogs = msg.logs
		m.moodIdx = clampIndex(m.moodIdx, len(m.moodLogs))
		return m, nil

	case moodLoggedMsg:
		m.saving = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.mode = modeBrowse
		m.moodIdx = 0
		m.loading = true
		next, flash := m.flash(fmt.Sprintf("Mood %d (%s) logged", msg.log.MoodRating, moodFace(msg.log.MoodRating)))
		return next, tea.Batch(flash, m.cmdLoadMoodLogs())

	case moodDeletedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.loading = true
		next, flash := m.flash(fmt.Sprintf("Mood log #%d deleted", msg.id))
		return next, tea.Batch(flash, m.cmdLoadMoodLogs())

	case insightsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		insights := msg.insights
		m.insights = &insights
		return m, nil
	}
	return m, nil
}

func (m mainLoopModel) updateMoodBrowse(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.moodIdx > 0 {
			m.moodIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.moodIdx < len(m.moodLogs)-1 {
			m.moodIdx++
		}
	case key.Matches(keyMsg, keys.refresh):
		return m, m.reload()
	case key.Matches(keyMsg, keys.filter):
		return m.startRange()
	case key.Matches(keyMsg, keys.newItem):
		m.mode = modeRate
		m.errMsg = ""
	case key.Matches(keyMsg, keys.delete):
		moodLog, ok := m.currentMoodLog()
		if !ok {
			return m, nil
		}
		m.confirm = confirmModel{
			action:   confirmDeleteMoodLog,
			targetID: moodLog.ID,
			message:  fmt.Sprintf("Delete mood %d logged at %s?", moodLog.MoodRating, formatTimestamp(moodLog.Timestamp)),
		}
	}
	return m, nil
}

// updateRate waits for a single digit from 1 to 5.
func (m mainLoopModel) updateRate(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, keys.esc) {
		m.mode = modeBrowse
		return m, nil
	}
	if m.saving {
		return m, nil
	}

	rating, err := strconv.Atoi(keyMsg.String())
	if err != nil || rating < models.MinMoodRating || rating > models.MaxMoodRating {
		m.errMsg = fmt.Sprintf("Press a number from %d to %d", models.MinMoodRating, models.MaxMoodRating)
		return m, nil
	}

	m.saving = true
	m.errMsg = ""
	return m, m.cmdLogMood(rating)
}

func (m mainLoopModel) viewMoodList() (string, string) {
	hotKeys := "n: log mood │ d: delete │ f: date range │ r: refresh"

	var b strings.Builder
	b.WriteString("Range: ")
	b.WriteString(describeRange(m.start, m.end))
	b.WriteString("\n\n")

	if len(m.moodLogs) == 0 {
		if !m.loading {
			b.WriteString("No mood logs in this range. Press n to add one.")
		}
		return b.String(), hotKeys
	}

	b.WriteString(fmt.Sprintf("  %-5s │ %-16s │ %s\n", "#", "Logged", "Mood"))
	b.WriteString("  ──────┼──────────────────┼──────────────────\n")
	for i, moodLog := range m.moodLogs {
		cursor := "  "
		if i == m.moodIdx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-5d │ %-16s │ %d %-5s %s\n",
			cursor, moodLog.ID, formatTimestamp(moodLog.Timestamp),
			moodLog.MoodRating, moodFace(moodLog.MoodRating), bar(moodLog.MoodRating, models.MaxMoodRating, models.MaxMoodRating)))
	}
	return strings.TrimRight(b.String(), "\n"), hotKeys
}

func (m mainLoopModel) viewRate() (string, string, string) {
	var b strings.Builder
	b.WriteString("How do you feel right now?\n\n")
	for rating := models.MinMoodRating; rating <= models.MaxMoodRating; rating++ {
		b.WriteString(fmt.Sprintf("  %d  %s\n", rating, moodFace(rating)))
	}
	return "LOG MOOD", strings.TrimRight(b.String(), "\n"), "1-5: log │ esc: cancel"
}

func (m mainLoopModel) cmdLoadMoodLogs() tea.Cmd {
	ctx, mood, start, end := m.ctx, m.services.MoodService, m.start, m.end
	return func() tea.Msg {
		logs, err := mood.List(ctx, start, end)
		return moodLogsLoadedMsg{logs: logs, err: err}
	}
}

func (m mainLoopModel) cmdLogMood(rating int) tea.Cmd {
	ctx, mood := m.ctx, m.services.MoodService
	return func() tea.Msg {
		moodLog, err := mood.Log(ctx, rating)
		return moodLoggedMsg{log: moodLog, err: err}
	}
}

func (m mainLoopModel) cmdDeleteMoodLog(id int64) tea.Cmd {
	ctx, mood := m.ctx, m.services.MoodService
	return func() tea.Msg {
		return moodDeletedMsg{id: id, err: mood.Delete(ctx, id)}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const previewWidth = 40

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "How was your day?"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(54)
	ta.SetHeight(10)
	return ta
}

func (m mainLoopModel) currentEntry() (models.JournalEntry, bool) {
	if m.entryIdx < 0 || m.entryIdx >= len(m.entries) {
		return models.JournalEntry{}, false
	}
	return m.entries[m.entryIdx], true
}

func (m mainLoopModel) updateJournalResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.entries = msg.entries
		m.entryIdx = clampIndex(m.entryIdx, len(m.entries))
		return m, nil

	case entryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.entry = msg.entry
		m.mode = modeDetail
		return m, nil

	case entrySavedMsg:
		m.saving = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.editor.Reset()
		m.editor.Blur()
		m.entry = msg.entry
		m.mode = modeDetail
		if msg.created {
			m.entryIdx = 0
		}
		m.loading = true
		next, flash := m.flash(savedStatus(msg.created))
		return next, tea.Batch(flash, m.cmdLoadEntries())

	case entryDeletedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.mode = modeBrowse
		m.loading = true
		next, flash := m.flash(fmt.Sprintf("Entry #%d deleted", msg.id))
		return next, tea.Batch(flash, m.cmdLoadEntries())
	}
	return m, nil
}

func savedStatus(created bool) string {
	if created {
		return "Entry saved"
	}
	return "Entry updated"
}

func (m mainLoopModel) updateJournalBrowse(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.entryIdx > 0 {
			m.entryIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.entryIdx < len(m.entries)-1 {
			m.entryIdx++
		}
	case key.Matches(keyMsg, keys.refresh):
		return m, m.reload()
	case key.Matches(keyMsg, keys.summary):
		m.summaries = !m.summaries
		return m, m.reload()
	case key.Matches(keyMsg, keys.newItem):
		return m.startCompose(0, "")
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.currentEntry()
		if !ok {
			m.status = "No entries yet"
			return m, nil
		}
		m.loading = true
		return m, m.cmdGetEntry(entry.ID)
	case key.Matches(keyMsg, keys.delete):
		entry, ok := m.currentEntry()
		if !ok {
			return m, nil
		}
		m.confirm = confirmModel{
			action:   confirmDeleteEntry,
			targetID: entry.ID,
			message:  fmt.Sprintf("Delete entry #%d from %s?", entry.ID, formatTimestamp(entry.CreatedAt)),
		}
	}
	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeBrowse
	case key.Matches(keyMsg, keys.edit):
		if m.entry.ContentStatus != models.ContentAvailable {
			m.errMsg = "This entry cannot be edited: its content is unavailable"
			return m, nil
		}
		return m.startCompose(m.entry.ID, m.entry.Content)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy(m.entry.Content)
	case key.Matches(keyMsg, keys.delete):
		m.confirm = confirmModel{
			action:   confirmDeleteEntry,
			targetID: m.entry.ID,
			message:  fmt.Sprintf("Delete entry #%d?", m.entry.ID),
		}
	}
	return m, nil
}

func (m mainLoopModel) startCompose(id int64, content string) (tea.Model, tea.Cmd) {
	m.mode = modeCompose
	m.editingID = id
	m.errMsg = ""
	m.editor.Reset()
	m.editor.SetValue(content)
	return m, m.editor.Focus()
}

func (m mainLoopModel) updateCompose(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.editor.Blur()
		if m.editingID != 0 {
			m.mode = modeDetail
		} else {
			m.mode = modeBrowse
		}
		return m, nil
	case key.Matches(keyMsg, keys.save):
		if m.saving {
			return m, nil
		}
		content := m.editor.Value()
		if strings.TrimSpace(content) == "" {
			m.errMsg = "An entry cannot be empty"
			return m, nil
		}
		m.saving = true
		m.errMsg = ""
		return m, m.cmdSaveEntry(m.editingID, content)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) viewJournalList() (string, string) {
	hotKeys := "enter: open │ n: new │ d: delete │ s: summaries │ r: refresh"
	if len(m.entries) == 0 {
		if m.loading {
			return "", hotKeys
		}
		return "No entries yet. Press n to write one.", hotKeys
	}

	var b strings.Builder
	if m.summaries {
		b.WriteString("Summary view: content is not decrypted\n\n")
	}
	b.WriteString(fmt.Sprintf("  %-5s │ %-16s │ %s\n", "#", "Written", "Entry"))
	b.WriteString("  ──────┼──────────────────┼" + strings.Repeat("─", previewWidth+1) + "\n")
	for i, entry := range m.entries {
		cursor := "  "
		if i == m.entryIdx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-5d │ %-16s │ %s\n", cursor, entry.ID, formatTimestamp(entry.CreatedAt), entryPreview(entry)))
	}
	return strings.TrimRight(b.String(), "\n"), hotKeys
}

func entryPreview(entry models.JournalEntry) string {
	if entry.ContentStatus != models.ContentAvailable {
		return entry.Content
	}
	return fitText(firstLine(entry.Content), previewWidth)
}

func (m mainLoopModel) viewDetail() (string, string, string) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Written: %s\n", formatTimestamp(m.entry.CreatedAt)))
	if !m.entry.UpdatedAt.Equal(m.entry.CreatedAt) {
		b.WriteString(fmt.Sprintf("Edited:  %s\n", formatTimestamp(m.entry.UpdatedAt)))
	}
	b.WriteString("\n")
	b.WriteString(m.entry.Content)

	return fmt.Sprintf("ENTRY #%d", m.entry.ID), b.String(), "esc: back │ e: edit │ c: copy │ d: delete"
}

func (m mainLoopModel) viewCompose() (string, string, string) {
	title := "NEW ENTRY"
	if m.editingID != 0 {
		title = fmt.Sprintf("EDIT ENTRY #%d", m.editingID)
	}
	return title, m.editor.View(), "ctrl+s: save │ esc: cancel"
}

func (m mainLoopModel) cmdLoadEntries() tea.Cmd {
	ctx, journal, summaries := m.ctx, m.services.JournalService, m.summaries
	return func() tea.Msg {
		var (
			entries []models.JournalEntry
			err     error
		)
		if summaries {
			entries, err = journal.ListSummaries(ctx)
		} else {
			entries, err = journal.List(ctx)
		}
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdGetEntry(id int64) tea.Cmd {
	ctx, journal := m.ctx, m.services.JournalService
	return func() tea.Msg {
		entry, err := journal.Get(ctx, id)
		return entryLoadedMsg{entry: entry, err: err}
	}
}

func (m mainLoopModel) cmdSaveEntry(id int64, content string) tea.Cmd {
	ctx, journal := m.ctx, m.services.JournalService
	return func() tea.Msg {
		if id == 0 {
			entry, err := journal.Create(ctx, content)
			return entrySavedMsg{entry: entry, created: true, err: err}
		}
		entry, err := journal.Update(ctx, id, content)
		return entrySavedMsg{entry: entry, err: err}
	}
}

func (m mainLoopModel) cmdDeleteEntry(id int64) tea.Cmd {
	ctx, journal := m.ctx, m.services.JournalService
	return func() tea.Msg {
		return entryDeletedMsg{id: id, err: journal.Delete(ctx, id)}
	}
}

func (m mainLoopModel) cmdDeleteAccount() tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		return accountDeletedMsg{err: auth.DeleteAccount(ctx)}
	}
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

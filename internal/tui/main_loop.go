// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tab int

const (
	tabJournal tab = iota
	tabMood
	tabInsights
)

var tabTitles = []string{"Journal", "Mood", "Insights"}

type mode int

const (
	modeBrowse mode = iota
	modeDetail
	modeCompose
	modeRate
	modeRange
)

const statusTTL = 3 * time.Second

type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	tab     tab
	mode    mode
	confirm confirmModel

	entries   []models.JournalEntry
	entryIdx  int
	entry     models.JournalEntry
	editor    textarea.Model
	summaries bool

	// editingID is 0 while composing a new entry.
	editingID int64

	moodLogs []models.MoodLog
	moodIdx  int
	insights *models.MoodInsights

	rangeInputs []textinput.Model
	rangeFocus  int
	start, end  *time.Time

	spinner spinner.Model
	loading bool
	saving  bool
	status  string
	errMsg  string
	server  ServerStatusMsg

	showBuildInfo bool
	logout        bool
	sessionLost   bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		buildInfo:   buildInfo,
		spinner:     s,
		loading:     true,
		editor:      newEditor(),
		rangeInputs: newRangeInputs(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadEntries())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ServerStatusMsg:
		m.server = msg
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case entriesLoadedMsg, entryLoadedMsg, entrySavedMsg, entryDeletedMsg:
		return m.updateJournalResult(msg)

	case moodLogsLoadedMsg, moodLoggedMsg, moodDeletedMsg, insightsLoadedMsg:
		return m.updateMoodResult(msg)

	case accountDeletedMsg:
		m.saving = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.logout = true
		return m, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		return m.flash("Copied to clipboard")
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardToInputs(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirm.active() {
		return m.updateConfirm(keyMsg)
	}

	switch m.mode {
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeCompose:
		return m.updateCompose(keyMsg)
	case modeRate:
		return m.updateRate(keyMsg)
	case modeRange:
		return m.updateRange(keyMsg)
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.version, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.deleteAccount):
		m.confirm = confirmModel{action: confirmDeleteAccount, message: "Delete your account with all entries and mood logs?"}
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		return m.switchTab((m.tab + 1) % tab(len(tabTitles)))
	case key.Matches(keyMsg, keys.backtab):
		return m.switchTab((m.tab + tab(len(tabTitles)) - 1) % tab(len(tabTitles)))
	}

	switch m.tab {
	case tabJournal:
		return m.updateJournalBrowse(keyMsg)
	case tabMood:
		return m.updateMoodBrowse(keyMsg)
	default:
		return m.updateInsightsBrowse(keyMsg)
	}
}

func (m mainLoopModel) switchTab(next tab) (tea.Model, tea.Cmd) {
	m.tab = next
	m.errMsg = ""
	return m, m.reload()
}

// reload fetches the data behind the active tab.
func (m *mainLoopModel) reload() tea.Cmd {
	m.loading = true
	switch m.tab {
	case tabJournal:
		return m.cmdLoadEntries()
	case tabMood:
		return m.cmdLoadMoodLogs()
	default:
		return m.cmdLoadInsights()
	}
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		pending := m.confirm
		m.confirm = confirmModel{}
		switch pending.action {
		case confirmDeleteEntry:
			m.mode = modeBrowse
			return m, m.cmdDeleteEntry(pending.targetID)
		case confirmDeleteMoodLog:
			return m, m.cmdDeleteMoodLog(pending.targetID)
		case confirmDeleteAccount:
			m.saving = true
			return m, m.cmdDeleteAccount()
		}
	case key.Matches(keyMsg, keys.no):
		m.confirm = confirmModel{}
	}
	return m, nil
}

// forwardToInputs passes non-key messages such as cursor blinks to the
// widget that has focus.
func (m mainLoopModel) forwardToInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeCompose:
		m.editor, cmd = m.editor.Update(msg)
	case modeRange:
		m.rangeInputs[m.rangeFocus], cmd = m.rangeInputs[m.rangeFocus].Update(msg)
	}
	return m, cmd
}

// fail shows err. A rejected token ends the session.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	m.loading = false
	m.saving = false
	if sessionExpired(err) {
		m.sessionLost = true
		m.logout = true
		return m, tea.Quit
	}
	m.errMsg = humanizeError(err)
	return m, nil
}

func (m mainLoopModel) flash(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.errMsg = ""
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.server)
	}

	var title, body, hotKeys string
	switch m.mode {
	case modeDetail:
		title, body, hotKeys = m.viewDetail()
	case modeCompose:
		title, body, hotKeys = m.viewCompose()
	case modeRate:
		title, body, hotKeys = m.viewRate()
	case modeRange:
		title, body, hotKeys = m.viewRange()
	default:
		title = "MOOD JOURNAL"
		switch m.tab {
		case tabJournal:
			body, hotKeys = m.viewJournalList()
		case tabMood:
			body, hotKeys = m.viewMoodList()
		default:
			body, hotKeys = m.viewInsights()
		}
		body = m.viewTabs() + "\n\n" + body
		hotKeys += " │ tab: switch │ v: version │ l: log out │ X: delete account │ q: quit"
	}

	var b strings.Builder
	if m.loading || m.saving {
		b.WriteString(m.spinner.View())
		b.WriteString(" Working...\n\n")
	}
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	page := renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
	if m.confirm.active() {
		return lipgloss.JoinVertical(lipgloss.Left, page, "", m.confirm.View())
	}
	return page
}

func (m mainLoopModel) viewTabs() string {
	cells := make([]string, 0, len(tabTitles))
	for i, t := range tabTitles {
		if tab(i) == m.tab {
			cells = append(cells, activeTabStyle.Render(t))
		} else {
			cells = append(cells, tabStyle.Render(t))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

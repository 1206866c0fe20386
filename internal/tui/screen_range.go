// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newRangeInputs() []textinput.Model {
	inputs := make([]textinput.Model, 2)
	for i, placeholder := range []string{"start YYYY-MM-DD", "end YYYY-MM-DD"} {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholder
		inputs[i].CharLimit = len(dateLayout)
		inputs[i].Width = 20
	}
	return inputs
}

func (m mainLoopModel) startRange() (tea.Model, tea.Cmd) {
	m.mode = modeRange
	m.errMsg = ""
	m.rangeInputs[0].SetValue(formatRangeInput(m.start))
	m.rangeInputs[1].SetValue(formatRangeInput(m.end))
	m.rangeInputs[1].Blur()
	m.rangeFocus = 0
	return m, m.rangeInputs[0].Focus()
}

func (m mainLoopModel) updateRange(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeBrowse
		m.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.tab, keys.backtab):
		m.rangeInputs[m.rangeFocus].Blur()
		m.rangeFocus = 1 - m.rangeFocus
		return m, m.rangeInputs[m.rangeFocus].Focus()
	case key.Matches(keyMsg, keys.enter):
		start, err := parseDateInput(m.rangeInputs[0].Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		end, err := parseDateInput(m.rangeInputs[1].Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		m.start, m.end = start, end
		m.mode = modeBrowse
		m.errMsg = ""
		return m, m.reload()
	}

	var cmd tea.Cmd
	m.rangeInputs[m.rangeFocus], cmd = m.rangeInputs[m.rangeFocus].Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) viewRange() (string, string, string) {
	var b strings.Builder
	b.WriteString("Leave a field empty for an open bound.\n\n")
	b.WriteString("From │ [")
	b.WriteString(m.rangeInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("To   │ [")
	b.WriteString(m.rangeInputs[1].View())
	b.WriteString("]")
	return "DATE RANGE", b.String(), "enter: apply │ tab: next field │ esc: cancel"
}

func formatRangeInput(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

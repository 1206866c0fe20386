// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteEntry
	confirmDeleteMoodLog
	confirmDeleteAccount
)

type confirmModel struct {
	action   confirmAction
	targetID int64
	message  string
}

func (m confirmModel) active() bool {
	return m.action != confirmNone
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

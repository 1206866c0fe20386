// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// credentialsForm is the input block shared by the login and register
// screens. Labels and inputs are kept in the same order.
type credentialsForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newCredentialsForm(confirmPassword bool) credentialsForm {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = validators.MaxLoginLength
	loginInput.Width = 40
	loginInput.Focus()

	form := credentialsForm{
		labels: []string{"Login", "Password"},
		inputs: []textinput.Model{loginInput, newPasswordInput("password")},
	}

	if confirmPassword {
		form.labels = append(form.labels, "Repeat")
		form.inputs = append(form.inputs, newPasswordInput("repeat password"))
	}

	return form
}

func newPasswordInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	return input
}

func (f *credentialsForm) login() string {
	return strings.TrimSpace(f.inputs[0].Value())
}

func (f *credentialsForm) password() string {
	return f.inputs[1].Value()
}

func (f *credentialsForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *credentialsForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *credentialsForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *credentialsForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *credentialsForm) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	for i, input := range f.inputs {
		b.WriteString(f.labels[i])
		b.WriteString(strings.Repeat(" ", 9-len(f.labels[i])))
		b.WriteString("│ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}
	return b.String()
}

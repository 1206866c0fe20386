// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. On submit it runs
// the login asynchronously and reports a [LoginResult], which [RootModel]
// uses to finish the flow.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       credentialsForm
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newCredentialsForm(false),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [LoginResult]: clears the submitting state and shows the error, if any.
//   - esc: back to the menu.
//   - tab / shift+tab: moves focus between inputs.
//   - enter: checks inputs and starts the login.
//
// Other keys go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			login, pass := m.form.login(), m.form.password()
			if login == "" || pass == "" {
				m.errMsg = "Login and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, cmdAuth(m.ctx, m.auth.Login, models.User{Login: login, Password: pass})
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

// cmdAuth runs a login or register call off the UI goroutine.
func cmdAuth(ctx context.Context, call func(context.Context, models.User) error, user models.User) tea.Cmd {
	return func() tea.Msg {
		return LoginResult{Username: user.Login, Err: call(ctx, user)}
	}
}

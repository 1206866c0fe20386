// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the journal client.
//
// It runs in two Bubble Tea programs: the login flow ([RootModel] routing
// menu, login and register pages) and the main loop with the journal, mood
// and insights tabs. Background events reach the running program through
// [TUI.Notify].
package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
	// options are appended to every program, tests use them to drop the
	// terminal.
	options []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow shows the menu until the user logs in or registers. notice, if
// set, is displayed above the menu.
func (t *TUI) LoginFlow(ctx context.Context, notice string) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	if notice != "" {
		pages["menu"].Update(menuNotice(notice))
	}

	finalModel, err := t.run(ctx, root)
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.loggedIn {
		return ErrUserQuit
	}

	t.logger.Info().Str("login", result.username).Msg("session started")
	return nil
}

// MainLoop runs the journal screens. logout is true when the user asked to
// log out or deleted the account. A token rejected by the server ends the
// loop with [ErrSessionExpired].
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	finalModel, err := t.run(ctx, newMainLoopModel(ctx, t.services, t.buildInfo))
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.sessionLost {
		return true, ErrSessionExpired
	}
	return result.logout, nil
}

// Notify delivers msg to the running program. It is a no-op between
// programs.
func (t *TUI) Notify(msg tea.Msg) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.program != nil {
		t.program.Send(msg)
	}
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)
	p := tea.NewProgram(model, opts...)

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	return p.Run()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/internal/tui"
	"github.com/MKhiriev/go-mood-journal/internal/workers"
)

const sessionExpiredNotice = "Session expired, please log in again"

// UI is the part of the terminal interface the application drives.
type UI interface {
	LoginFlow(ctx context.Context, notice string) error
	MainLoop(ctx context.Context) (logout bool, err error)
	Notify(msg tea.Msg)
}

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp wires the UI with the client services. A server status worker is
// added to the given workers and runs while the main screen is open.
func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger, extra ...workers.Worker) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	status := workers.NewServerStatusWorker(services.InfoService, workers.DefaultStatusInterval, func(s workers.ServerStatus) {
		ui.Notify(tui.ServerStatusMsg{Online: s.Online, Version: s.Version, CheckedAt: s.CheckedAt})
	}, logger)

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(append([]workers.Worker{status}, extra...)...),
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	return a.run(context.Background())
}

func (a *App) run(ctx context.Context) error {
	notice := ""
	for {
		if !a.services.AuthService.LoggedIn() {
			err := a.ui.LoginFlow(ctx, notice)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}
		notice = ""

		logout, err := a.mainLoop(ctx)
		switch {
		case errors.Is(err, tui.ErrSessionExpired):
			a.logger.Info().Msg("session expired")
			a.services.AuthService.Logout()
			notice = sessionExpiredNotice
			continue
		case err != nil:
			return fmt.Errorf("main loop: %w", err)
		case !logout:
			return nil
		}

		a.services.AuthService.Logout()
		a.logger.Info().Msg("logged out")
	}
}

func (a *App) mainLoop(ctx context.Context) (bool, error) {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	return a.ui.MainLoop(ctx)
}

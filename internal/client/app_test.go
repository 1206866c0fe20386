// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/mock"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/internal/tui"
	"github.com/MKhiriev/go-mood-journal/models"
)

type mainLoopResult struct {
	logout bool
	err    error
}

type fakeUI struct {
	mu       sync.Mutex
	login    []error
	main     []mainLoopResult
	notices  []string
	notified []tea.Msg
}

func (f *fakeUI) LoginFlow(_ context.Context, notice string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, notice)
	err := f.login[0]
	f.login = f.login[1:]
	return err
}

func (f *fakeUI) MainLoop(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := f.main[0]
	f.main = f.main[1:]
	return res.logout, res.err
}

func (f *fakeUI) Notify(msg tea.Msg) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, msg)
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	info := mock.NewMockClientInfoService(ctrl)
	info.EXPECT().ServerVersion(gomock.Any()).Return(models.VersionResponse{Version: "v1"}, nil).AnyTimes()

	app, err := NewApp(&service.ClientServices{AuthService: auth, InfoService: info}, ui, logger.Nop())
	require.NoError(t, err)
	return app, auth
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_QuitOnLoginScreen(t *testing.T) {
	ui := &fakeUI{login: []error{tui.ErrUserQuit}}
	app, auth := newTestApp(t, ui)
	auth.EXPECT().LoggedIn().Return(false)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, []string{""}, ui.notices)
}

func TestApp_LoginThenQuit(t *testing.T) {
	ui := &fakeUI{
		login: []error{nil},
		main:  []mainLoopResult{{logout: false}},
	}
	app, auth := newTestApp(t, ui)
	auth.EXPECT().LoggedIn().Return(false)

	require.NoError(t, app.run(context.Background()))
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	ui := &fakeUI{
		login: []error{nil, tui.ErrUserQuit},
		main:  []mainLoopResult{{logout: true}},
	}
	app, auth := newTestApp(t, ui)
	gomock.InOrder(
		auth.EXPECT().LoggedIn().Return(false),
		auth.EXPECT().Logout(),
		auth.EXPECT().LoggedIn().Return(false),
	)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, []string{"", ""}, ui.notices)
}

func TestApp_SessionExpiredShowsNotice(t *testing.T) {
	ui := &fakeUI{
		login: []error{nil, tui.ErrUserQuit},
		main:  []mainLoopResult{{logout: true, err: tui.ErrSessionExpired}},
	}
	app, auth := newTestApp(t, ui)
	gomock.InOrder(
		auth.EXPECT().LoggedIn().Return(false),
		auth.EXPECT().Logout(),
		auth.EXPECT().LoggedIn().Return(false),
	)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, []string{"", sessionExpiredNotice}, ui.notices)
}

func TestApp_LoginError(t *testing.T) {
	ui := &fakeUI{login: []error{errors.New("terminal closed")}}
	app, auth := newTestApp(t, ui)
	auth.EXPECT().LoggedIn().Return(false)

	err := app.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login flow")
}

func TestApp_MainLoopError(t *testing.T) {
	boom := errors.New("boom")
	ui := &fakeUI{main: []mainLoopResult{{err: boom}}}
	app, auth := newTestApp(t, ui)
	auth.EXPECT().LoggedIn().Return(true)

	err := app.run(context.Background())
	assert.ErrorIs(t, err, boom)
}

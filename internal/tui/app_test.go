// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T, auth service.ClientAuthService) RootModel {
	t.Helper()
	ctx := context.Background()
	return NewRootModel(map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, auth),
		"register": NewRegisterModel(ctx, auth),
	}, "menu", models.NewAppBuildInfo("v0.3.0", "2026-06-01", "f00d"))
}

// step updates the root model without running the returned command.
func step(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// follow sends key and delivers the NavigateTo it produces.
func follow(t *testing.T, r RootModel, key tea.KeyMsg) RootModel {
	t.Helper()
	r, cmd := step(t, r, key)
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	r, _ = step(t, r, nav)
	return r
}

func typeText(t *testing.T, r RootModel, text string) RootModel {
	t.Helper()
	for _, ch := range text {
		r, _ = step(t, r, keyRunes(string(ch)))
	}
	return r
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestRootModel_LoginSuccess(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	r := newTestRoot(t, svcs.AuthService)

	mocks.auth.EXPECT().Login(gomock.Any(), models.User{Login: "alice", Password: "pw"}).Return(nil)

	r = follow(t, r, enterKey)
	require.IsType(t, &LoginModel{}, r.current)

	r = typeText(t, r, "alice")
	r, _ = step(t, r, tabKey)
	r = typeText(t, r, "pw")

	r, cmd := step(t, r, enterKey)
	require.NotNil(t, cmd)

	r, cmd = step(t, r, cmd())
	assert.True(t, r.loggedIn)
	assert.Equal(t, "alice", r.username)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRootModel_LoginFailureStaysOnPage(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	r := newTestRoot(t, svcs.AuthService)

	mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(service.ErrWrongPassword)

	r = follow(t, r, enterKey)
	r = typeText(t, r, "alice")
	r, _ = step(t, r, tabKey)
	r = typeText(t, r, "nope")
	r, cmd := step(t, r, enterKey)
	r, _ = step(t, r, cmd())

	assert.False(t, r.loggedIn)
	assert.Contains(t, r.View(), "Invalid login or password")
}

func TestRootModel_LoginRequiresBothFields(t *testing.T) {
	svcs, _ := newServiceMocks(t)
	r := newTestRoot(t, svcs.AuthService)

	r = follow(t, r, enterKey)
	r = typeText(t, r, "alice")
	r, cmd := step(t, r, enterKey)

	assert.Nil(t, cmd)
	assert.Contains(t, r.View(), "Login and password are required")
}

func TestRootModel_RegisterPasswordMismatch(t *testing.T) {
	svcs, _ := newServiceMocks(t)
	r := newTestRoot(t, svcs.AuthService)

	r, _ = step(t, r, tea.KeyMsg{Type: tea.KeyDown})
	r = follow(t, r, enterKey)
	require.IsType(t, &RegisterModel{}, r.current)

	r = typeText(t, r, "bob")
	r, _ = step(t, r, tabKey)
	r = typeText(t, r, "one")
	r, _ = step(t, r, tabKey)
	r = typeText(t, r, "two")
	r, cmd := step(t, r, enterKey)

	assert.Nil(t, cmd)
	assert.Contains(t, r.View(), "Passwords do not match")
}

func TestRootModel_RegisterSuccess(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	r := newTestRoot(t, svcs.AuthService)

	mocks.auth.EXPECT().Register(gomock.Any(), models.User{Login: "bob", Password: "same"}).Return(nil)

	r, _ = step(t, r, tea.KeyMsg{Type: tea.KeyDown})
	r = follow(t, r, enterKey)
	r = typeText(t, r, "bob")
	r, _ = step(t, r, tabKey)
	r = typeText(t, r, "same")
	r, _ = step(t, r, tabKey)
	r = typeText(t, r, "same")
	r, cmd := step(t, r, enterKey)
	r, _ = step(t, r, cmd())

	assert.True(t, r.loggedIn)
}

func TestRootModel_EscReturnsToMenu(t *testing.T) {
	svcs, _ := newServiceMocks(t)
	r := newTestRoot(t, svcs.AuthService)

	r = follow(t, r, enterKey)
	r = follow(t, r, tea.KeyMsg{Type: tea.KeyEsc})

	assert.IsType(t, &MenuModel{}, r.current)
}

func TestRootModel_BuildInfoAndQuit(t *testing.T) {
	svcs, _ := newServiceMocks(t)
	r := newTestRoot(t, svcs.AuthService)

	r, _ = step(t, r, keyRunes("v"))
	assert.Contains(t, r.View(), "v0.3.0")

	r, _ = step(t, r, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, r.View(), "v0.3.0")

	r, cmd := step(t, r, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, r.quitByUser)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTUI_New_RequiresServices(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)
}

func TestTUI_MainLoop_QuitThroughNotify(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	mocks.journal.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()

	ui, err := New(svcs, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	ui.options = []tea.ProgramOption{tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutSignalHandler()}

	type result struct {
		logout bool
		err    error
	}
	done := make(chan result, 1)
	go func() {
		logout, err := ui.MainLoop(context.Background())
		done <- result{logout: logout, err: err}
	}()

	require.Eventually(t, func() bool {
		ui.Notify(keyRunes("l"))
		select {
		case res := <-done:
			assert.NoError(t, res.err)
			assert.True(t, res.logout)
			return true
		default:
			return false
		}
	}, 5*time.Second, 20*time.Millisecond)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/mock"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	auth    *mock.MockClientAuthService
	journal *mock.MockClientJournalService
	mood    *mock.MockClientMoodService
	info    *mock.MockClientInfoService
}

func newServiceMocks(t *testing.T) (*service.ClientServices, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		auth:    mock.NewMockClientAuthService(ctrl),
		journal: mock.NewMockClientJournalService(ctrl),
		mood:    mock.NewMockClientMoodService(ctrl),
		info:    mock.NewMockClientInfoService(ctrl),
	}
	return &service.ClientServices{
		AuthService:    m.auth,
		JournalService: m.journal,
		MoodService:    m.mood,
		InfoService:    m.info,
	}, m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msg to the model and returns the updated main loop model.
func press(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(mainLoopModel)
	require.True(t, ok)
	return updated, cmd
}

var firstEntry = models.JournalEntry{
	ID:            1,
	UserID:        7,
	Content:       "Walked by the sea\nand then slept",
	ContentStatus: models.ContentAvailable,
	CreatedAt:     time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC),
	UpdatedAt:     time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC),
}

func TestMainLoop_LoadsEntries(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})

	mocks.journal.EXPECT().List(gomock.Any()).Return([]models.JournalEntry{firstEntry}, nil)

	m, _ = press(t, m, m.cmdLoadEntries()())

	assert.False(t, m.loading)
	require.Len(t, m.entries, 1)
	assert.Contains(t, m.View(), "Walked by the sea")
	assert.NotContains(t, m.View(), "and then slept")
}

func TestMainLoop_SummaryToggle(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})

	mocks.journal.EXPECT().ListSummaries(gomock.Any()).Return([]models.JournalEntry{
		{ID: 1, Content: models.EncryptedContentMarker, ContentStatus: models.ContentEncrypted},
	}, nil)

	m, cmd := press(t, m, keyRunes("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.summaries)

	m, _ = press(t, m, cmd())
	assert.Contains(t, m.View(), models.EncryptedContentMarker)
}

func TestMainLoop_OpenEntry(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})
	m.loading = false
	m.entries = []models.JournalEntry{firstEntry}

	mocks.journal.EXPECT().Get(gomock.Any(), int64(1)).Return(firstEntry, nil)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())

	assert.Equal(t, modeDetail, m.mode)
	assert.Contains(t, m.View(), "and then slept")
}

func TestMainLoop_ComposeAndSave(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})
	m.loading = false

	saved := models.JournalEntry{ID: 2, Content: "hi", ContentStatus: models.ContentAvailable}
	mocks.journal.EXPECT().Create(gomock.Any(), "hi").Return(saved, nil)

	m, _ = press(t, m, keyRunes("n"))
	require.Equal(t, modeCompose, m.mode)

	m, _ = press(t, m, keyRunes("h"))
	m, _ = press(t, m, keyRunes("i"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.saving)

	m, _ = press(t, m, cmd())
	assert.False(t, m.saving)
	assert.Equal(t, modeDetail, m.mode)
	assert.Equal(t, saved, m.entry)
	assert.Equal(t, "Entry saved", m.status)
}

func TestMainLoop_ComposeRejectsBlank(t *testing.T) {
	svcs, _ := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})

	m, _ = press(t, m, keyRunes("n"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Equal(t, "An entry cannot be empty", m.errMsg)
}

func TestMainLoop_EditFromDetail(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})
	m.mode = modeDetail
	m.entry = firstEntry

	mocks.journal.EXPECT().Update(gomock.Any(), int64(1), firstEntry.Content+"!").
		Return(firstEntry, nil)

	m, _ = press(t, m, keyRunes("e"))
	require.Equal(t, modeCompose, m.mode)
	assert.Equal(t, firstEntry.Content, m.editor.Value())

	m, _ = press(t, m, keyRunes("!"))
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	msg := cmd()

	saved, ok := msg.(entrySavedMsg)
	require.True(t, ok)
	assert.False(t, saved.created)
}

func TestMainLoop_DeleteEntryNeedsConfirmation(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})
	m.loading = false
	m.entries = []models.JournalEntry{firstEntry}

	m, cmd := press(t, m, keyRunes("d"))
	assert.Nil(t, cmd)
	require.True(t, m.confirm.active())
	assert.Contains(t, m.View(), "Delete entry #1")

	m, cmd = press(t, m, keyRunes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.confirm.active())

	mocks.journal.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	m, _ = press(t, m, keyRunes("d"))
	_, cmd = press(t, m, keyRunes("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, entryDeletedMsg{id: 1}, cmd())
}

func TestMainLoop_LogMood(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})
	m.tab = tabMood
	m.loading = false

	mocks.mood.EXPECT().Log(gomock.Any(), 4).Return(models.MoodLog{ID: 3, MoodRating: 4}, nil)

	m, _ = press(t, m, keyRunes("n"))
	require.Equal(t, modeRate, m.mode)

	m, cmd := press(t, m, keyRunes("9"))
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)

	m, cmd = press(t, m, keyRunes("4"))
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Mood 4 (good) logged", m.status)
}

func TestMainLoop_DateRangeReloadsMoodLogs(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})
	m.tab = tabMood
	m.loading = false

	wantStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mocks.mood.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, start, _ *time.Time) ([]models.MoodLog, error) {
			require.NotNil(t, start)
			assert.True(t, wantStart.Equal(*start))
			return []models.MoodLog{{ID: 1, MoodRating: 2, Timestamp: wantStart}}, nil
		})

	m, _ = press(t, m, keyRunes("f"))
	require.Equal(t, modeRange, m.mode)

	for _, r := range "2026-01-01" {
		m, _ = press(t, m, keyRunes(string(r)))
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, modeBrowse, m.mode)

	m, _ = press(t, m, cmd())
	require.Len(t, m.moodLogs, 1)
	assert.Contains(t, m.View(), "2026-01-01 → ...")
}

func TestMainLoop_DateRangeRejectsBadInput(t *testing.T) {
	svcs, _ := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})
	m.tab = tabInsights

	m, _ = press(t, m, keyRunes("f"))
	for _, r := range "01/02" {
		m, _ = press(t, m, keyRunes(string(r)))
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, modeRange, m.mode)
	assert.Contains(t, m.errMsg, "YYYY-MM-DD")
}

func TestMainLoop_InsightsView(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})

	mocks.mood.EXPECT().Insights(gomock.Any(), nil, nil).Return(models.MoodInsights{
		Count:        3,
		Average:      4,
		Min:          3,
		Max:          5,
		StdDev:       0.82,
		Distribution: map[int]int{3: 1, 4: 1, 5: 1},
		DominantMood: models.DominantMoodMostlyPositive,
	}, nil)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabMood, m.tab)
	require.NotNil(t, cmd)

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, tabInsights, m.tab)

	m, _ = press(t, m, cmd())
	view := m.View()
	assert.Contains(t, view, models.DominantMoodMostlyPositive)
	assert.Contains(t, view, "Average:  4.00")
}

func TestMainLoop_SessionExpiredEndsLoop(t *testing.T) {
	svcs, _ := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})

	m, cmd := press(t, m, entriesLoadedMsg{err: service.ErrTokenIsExpiredOrInvalid})

	assert.True(t, m.sessionLost)
	assert.True(t, m.logout)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestMainLoop_ErrorIsShown(t *testing.T) {
	svcs, _ := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})

	m, _ = press(t, m, entryLoadedMsg{err: store.ErrJournalEntryNotFound})

	assert.Equal(t, "Journal entry not found", m.errMsg)
	assert.Equal(t, modeBrowse, m.mode)
}

func TestMainLoop_CopyEntry(t *testing.T) {
	var copied string
	restore := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = restore })

	svcs, _ := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})
	m.mode = modeDetail
	m.entry = firstEntry

	m, cmd := press(t, m, keyRunes("c"))
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())

	assert.Equal(t, firstEntry.Content, copied)
	assert.Equal(t, "Copied to clipboard", m.status)
}

func TestMainLoop_CopyFailure(t *testing.T) {
	restore := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { copyToClipboard = restore })

	svcs, _ := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})
	m.mode = modeDetail
	m.entry = firstEntry

	_, cmd := press(t, m, keyRunes("c"))
	m, _ = press(t, m, cmd())

	assert.Equal(t, "Copy failed: no clipboard", m.errMsg)
}

func TestMainLoop_LogoutAndDeleteAccount(t *testing.T) {
	svcs, mocks := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.AppBuildInfo{})
	m.loading = false

	out, cmd := press(t, m, keyRunes("l"))
	assert.True(t, out.logout)
	assert.Equal(t, tea.Quit(), cmd())

	mocks.auth.EXPECT().DeleteAccount(gomock.Any()).Return(nil)

	m, _ = press(t, m, keyRunes("X"))
	require.True(t, m.confirm.active())
	m, cmd = press(t, m, keyRunes("y"))
	m, cmd = press(t, m, cmd())

	assert.True(t, m.logout)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestMainLoop_ServerStatusInBuildInfo(t *testing.T) {
	svcs, _ := newServiceMocks(t)
	m := newMainLoopModel(context.Background(), svcs, models.NewAppBuildInfo("v1.4.0", "2026-05-01", "abc"))

	m, _ = press(t, m, ServerStatusMsg{Online: true, Version: "v1.4.1", CheckedAt: time.Now()})
	m, _ = press(t, m, keyRunes("v"))

	view := m.View()
	assert.Contains(t, view, "v1.4.0")
	assert.Contains(t, view, "online, v1.4.1")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

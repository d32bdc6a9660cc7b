package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discard/internal/config"
	"discard/internal/expiry"
	"discard/internal/notes/data"
	"discard/internal/notes/service"
	"discard/internal/tui/board"
)

var now = time.Date(2026, 7, 4, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func testConfig() *config.Config {
	return &config.Config{DefaultExpiry: expiry.Day, DefaultView: config.ViewAll}
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_NewNoteFlow(t *testing.T) {
	repo := service.NewNoteRepository(data.NewMemoryStore(), service.WithClock(clock))
	m := NewAppModel(testConfig(), repo, nil)
	defer m.Close()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.View(), "Write a note!")

	m, cmd := update(t, m, runes("n"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Equal(t, ViewEditor, m.CurrentView())

	m, _ = update(t, m, runes("Dentist"))
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m, cmd = update(t, m, cmd())

	assert.Equal(t, ViewBoard, m.CurrentView())
	assert.NotNil(t, cmd, "countdown restarted")
	list := repo.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Dentist", list[0].Title)
	assert.True(t, list[0].ExpiryDate.Equal(now.Add(24*time.Hour)), "default expiry from config")
	assert.Contains(t, m.View(), "Dentist")
}

func TestApp_EditCancelKeepsNote(t *testing.T) {
	store := data.NewMemoryStore()
	require.NoError(t, data.SaveNotes(store, data.SaveKey, []data.Note{
		{ID: "aaaa", Title: "Keep me", ExpiryDate: now.Add(time.Hour)},
	}))
	repo := service.NewNoteRepository(store, service.WithClock(clock))
	m := NewAppModel(testConfig(), repo, nil)
	defer m.Close()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	require.Equal(t, ViewEditor, m.CurrentView())

	m, _ = update(t, m, runes("!!"))
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, cmd())

	assert.Equal(t, ViewBoard, m.CurrentView())
	n, ok := repo.Get("aaaa")
	require.True(t, ok)
	assert.Equal(t, "Keep me", n.Title)
}

func TestApp_ReloadOnStoreChange(t *testing.T) {
	store := data.NewMemoryStore()
	repo := service.NewNoteRepository(store, service.WithClock(clock))
	changes := make(chan struct{}, 1)
	m := NewAppModel(testConfig(), repo, changes)
	defer m.Close()

	// Another process writes to the same store
	other := service.NewNoteRepository(store, service.WithClock(clock))
	other.Add(data.Note{ID: "bbbb", Title: "From elsewhere", ExpiryDate: now.Add(time.Hour)})

	changes <- struct{}{}
	msg := m.waitForStoreChange()()
	require.IsType(t, StoreChangedMsg{}, msg)

	m, cmd := update(t, m, msg)
	assert.NotNil(t, cmd, "keeps listening")
	require.Len(t, repo.List(), 1)

	ev := m.waitForEvent()()
	require.IsType(t, NoteEventMsg{}, ev)
	assert.Equal(t, service.EventReloaded, ev.(NoteEventMsg).Event.Kind)

	m, _ = update(t, m, ev)
	require.Len(t, m.boardView.Notes(), 1)
	assert.Equal(t, "From elsewhere", m.boardView.Notes()[0].Title)
}

func TestApp_NoWatcher(t *testing.T) {
	repo := service.NewNoteRepository(data.NewMemoryStore())
	m := NewAppModel(testConfig(), repo, nil)
	defer m.Close()
	assert.Nil(t, m.waitForStoreChange())
}

func TestApp_SoonViewFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultView = config.ViewSoon
	m := NewAppModel(cfg, service.NewNoteRepository(data.NewMemoryStore()), nil)
	defer m.Close()
	assert.True(t, m.boardView.SoonOnly())
}

func TestApp_StaleTickAfterEditorOpens(t *testing.T) {
	store := data.NewMemoryStore()
	current := now
	require.NoError(t, data.SaveNotes(store, data.SaveKey, []data.Note{
		{ID: "aaaa", Title: "Short", ExpiryDate: now.Add(time.Second)},
	}))
	repo := service.NewNoteRepository(store, service.WithClock(func() time.Time { return current }))
	m := NewAppModel(testConfig(), repo, nil)
	defer m.Close()
	m.Init()

	m, cmd := update(t, m, runes("n"))
	m, _ = update(t, m, cmd())

	current = current.Add(time.Minute)
	for gen := 0; gen < 5; gen++ {
		m, _ = update(t, m, board.TickMsg{Gen: gen})
	}
	assert.Len(t, repo.List(), 1, "no deletions while the countdown is stopped")
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := NewAppModel(testConfig(), service.NewNoteRepository(data.NewMemoryStore()), nil)
	defer m.Close()
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"discard/internal/config"
	"discard/internal/logs"
	"discard/internal/notes/service"
	"discard/internal/tui/board"
	"discard/internal/tui/editor"
)

const statusBarHeight = 2

// AppModel is the root model that switches between the board and the editor
type AppModel struct {
	cfg  *config.Config
	repo service.NoteRepository

	changes     <-chan struct{}
	events      <-chan service.Event
	unsubscribe func()

	currentView ViewType
	boardView   board.Model
	editorView  editor.Model

	width  int
	height int
	ready  bool
}

// NewAppModel creates the root application model. changes signals external
// writes to the notes file and may be nil.
func NewAppModel(cfg *config.Config, repo service.NoteRepository, changes <-chan struct{}) AppModel {
	events, unsubscribe := repo.Subscribe()
	return AppModel{
		cfg:         cfg,
		repo:        repo,
		changes:     changes,
		events:      events,
		unsubscribe: unsubscribe,
		currentView: ViewBoard,
		boardView:   board.New(repo, cfg.DefaultView == config.ViewSoon),
	}
}

// Close drops the repository subscription
func (m AppModel) Close() {
	m.unsubscribe()
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.boardView.Init(), m.waitForStoreChange(), m.waitForEvent())
}

func (m AppModel) waitForStoreChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return StoreChangedMsg{}
	}
}

func (m AppModel) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return NoteEventMsg{Event: ev}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - statusBarHeight
		m.boardView.SetSize(msg.Width, contentHeight)
		if m.currentView == ViewEditor {
			m.editorView.SetSize(msg.Width, contentHeight)
		}
		return m, nil

	case StoreChangedMsg:
		logs.Logger.Println("Notes file changed on disk, reloading")
		m.repo.Reload()
		return m, m.waitForStoreChange()

	case NoteEventMsg:
		m.boardView.Refresh()
		return m, m.waitForEvent()

	case board.TickMsg:
		// Ticks belong to the board whichever view is showing
		var cmd tea.Cmd
		m.boardView, cmd = m.boardView.Update(msg)
		return m, cmd

	case OpenEditorMsg:
		m.boardView.StopCountdown()
		m.editorView = editor.New(msg.Note, m.cfg.DefaultExpiry, m.repo.Now)
		m.editorView.SetSize(m.width, m.height-statusBarHeight)
		m.currentView = ViewEditor
		return m, m.editorView.Init()

	case EditorClosedMsg:
		if msg.Saved {
			if msg.IsNew {
				m.repo.Add(msg.Note)
			} else {
				m.repo.Update(msg.Note)
			}
		}
		m.currentView = ViewBoard
		m.boardView.Refresh()
		return m, m.boardView.StartCountdown()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.boardView.StopCountdown()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewBoard:
		m.boardView, cmd = m.boardView.Update(msg)
	case ViewEditor:
		m.editorView, cmd = m.editorView.Update(msg)
	}
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var content, statusText string
	switch m.currentView {
	case ViewEditor:
		content = m.editorView.View()
		statusText = "tab: next field | ctrl+s: save | esc: cancel"
	default:
		content = m.boardView.View()
		statusText = "n: new | enter: edit | d: delete | s: expiring soon | ?: help | q: quit"
	}

	statusBar := StatusBarStyle.Width(m.width).Render(HelpStyle.Render(statusText))
	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

// CurrentView reports which view is showing
func (m AppModel) CurrentView() ViewType {
	return m.currentView
}

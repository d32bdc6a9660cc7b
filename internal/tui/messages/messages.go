package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"discard/internal/notes/data"
	"discard/internal/notes/service"
)

// ViewType represents the different views in the application
type ViewType int

const (
	ViewBoard ViewType = iota
	ViewEditor
)

// OpenEditorMsg asks the app to open the editor. A nil Note starts a new one.
type OpenEditorMsg struct {
	Note *data.Note
}

// EditorClosedMsg is sent when the editor is saved or cancelled
type EditorClosedMsg struct {
	Note  data.Note
	IsNew bool
	Saved bool
}

// StoreChangedMsg signals that the notes file changed on disk
type StoreChangedMsg struct{}

// NoteEventMsg carries a repository change event into the event loop
type NoteEventMsg struct {
	Event service.Event
}

func OpenEditor(n *data.Note) tea.Cmd {
	return func() tea.Msg {
		return OpenEditorMsg{Note: n}
	}
}

package tui

import "discard/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewBoard  = messages.ViewBoard
	ViewEditor = messages.ViewEditor
)

type OpenEditorMsg = messages.OpenEditorMsg
type EditorClosedMsg = messages.EditorClosedMsg
type StoreChangedMsg = messages.StoreChangedMsg
type NoteEventMsg = messages.NoteEventMsg

package tui

import "discard/internal/tui/theme"

var (
	StatusBarStyle = theme.StatusBar
	HelpStyle      = theme.HelpHint
)

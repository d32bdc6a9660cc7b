package board

import "discard/internal/tui/theme"

const (
	cardWidth    = 28 // inside the border, padding included
	cardGap      = 1
	previewLines = 2
)

var (
	cardStyle        = theme.Card.Width(cardWidth)
	cardFocusedStyle = theme.CardFocused.Width(cardWidth)
	cardTitleStyle   = theme.Bold
	cardPreviewStyle = theme.Muted
	emptyStyle       = theme.Muted.Italic(true)
)

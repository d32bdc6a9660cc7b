// Package board renders notes as a grid of cards and removes them as they
// expire.
package board

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"discard/internal/expiry"
	"discard/internal/logs"
	"discard/internal/notes/data"
	"discard/internal/notes/service"
	"discard/internal/tui/messages"
	"discard/internal/tui/shared"
	"discard/internal/tui/theme"
)

const (
	emptyAll  = "Write a note!"
	emptySoon = "Notes that expire soon will show up here"
)

// Model is the card board. Its countdown deletes notes once they expire.
type Model struct {
	repo      service.NoteRepository
	countdown *Countdown

	notes    []data.Note
	soonOnly bool
	cursor   int

	confirm  *ConfirmationModal
	pending  data.Note
	showHelp bool

	width  int
	height int
}

// New creates a board over repo, optionally starting in the expiring-soon view
func New(repo service.NoteRepository, soonOnly bool) Model {
	m := Model{
		repo:      repo,
		countdown: &Countdown{},
		soonOnly:  soonOnly,
	}
	m.Refresh()
	return m
}

// Init starts the countdown
func (m Model) Init() tea.Cmd {
	return m.countdown.Start(nextPoll(m.repo.List(), m.repo.Now()))
}

// StartCountdown removes whatever expired while the board was hidden and
// starts a fresh countdown run.
func (m *Model) StartCountdown() tea.Cmd {
	m.expire()
	return m.countdown.Start(nextPoll(m.repo.List(), m.repo.Now()))
}

// StopCountdown stops the countdown; pending ticks are ignored
func (m *Model) StopCountdown() {
	m.countdown.Stop()
}

// Refresh re-reads the visible notes from the repository
func (m *Model) Refresh() {
	if m.soonOnly {
		m.notes = m.repo.ExpiringSoon()
	} else {
		m.notes = m.repo.List()
	}
	m.clampCursor()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Notes() []data.Note { return m.notes }
func (m Model) Cursor() int        { return m.cursor }
func (m Model) SoonOnly() bool     { return m.soonOnly }
func (m Model) Countdown() *Countdown {
	return m.countdown
}

// Selected returns the note under the cursor
func (m Model) Selected() (data.Note, bool) {
	if m.cursor < 0 || m.cursor >= len(m.notes) {
		return data.Note{}, false
	}
	return m.notes[m.cursor], true
}

// IsInModalState reports whether the board is showing a popup that owns the keyboard
func (m Model) IsInModalState() bool {
	return m.confirm != nil || m.showHelp
}

func (m *Model) expire() {
	if purged := m.repo.PurgeExpired(); len(purged) > 0 {
		logs.Logger.Printf("Countdown removed %d expired note(s)", len(purged))
	}
	m.Refresh()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.notes) {
		m.cursor = len(m.notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) columns() int {
	return shared.Columns(m.width, cardWidth+2, cardGap)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.countdown.Live(msg) {
			return m, nil
		}
		m.expire()
		return m, m.countdown.Next(nextPoll(m.repo.List(), m.repo.Now()))

	case ConfirmationResultMsg:
		if m.confirm == nil {
			return m, nil
		}
		m.confirm = nil
		if msg.Confirmed {
			m.repo.Delete(m.pending)
			m.Refresh()
		}
		m.pending = data.Note{}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.confirm != nil {
		return m, m.confirm.Update(msg)
	}

	switch msg.String() {
	case "q":
		m.countdown.Stop()
		return m, tea.Quit

	case "?":
		m.showHelp = true

	case "n":
		m.countdown.Stop()
		return m, messages.OpenEditor(nil)

	case "enter":
		if n, ok := m.Selected(); ok {
			m.countdown.Stop()
			return m, messages.OpenEditor(&n)
		}

	case "d":
		if n, ok := m.Selected(); ok {
			m.pending = n
			m.confirm = NewConfirmationModal("Delete this note?", n.Title, 40)
		}

	case "s":
		m.soonOnly = !m.soonOnly
		m.cursor = 0
		m.Refresh()

	case "h", "left":
		m.cursor--
	case "l", "right":
		m.cursor++
	case "j", "down":
		if m.cursor+m.columns() < len(m.notes) {
			m.cursor += m.columns()
		}
	case "k", "up":
		if m.cursor-m.columns() >= 0 {
			m.cursor -= m.columns()
		}
	}

	m.clampCursor()
	return m, nil
}

func (m Model) View() string {
	if m.showHelp {
		return shared.RenderHelpPopup("DisCard - Keyboard Shortcuts", helpSections, m.width, m.height)
	}
	if m.confirm != nil {
		return shared.Overlay(m.confirm.View(), m.width, m.height)
	}

	header := m.renderTabs()
	bodyHeight := m.height - lipgloss.Height(header)

	if len(m.notes) == 0 {
		msg := emptyAll
		if m.soonOnly {
			msg = emptySoon
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, shared.Overlay(emptyStyle.Render(msg), m.width, bodyHeight))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderGrid(bodyHeight))
}

func (m Model) renderTabs() string {
	all, soon := theme.TabActive, theme.TabInactive
	if m.soonOnly {
		all, soon = soon, all
	}
	count := len(m.repo.ExpiringSoon())
	tabs := all.Render("All notes") + "   " + soon.Render(fmt.Sprintf("Expiring soon (%d)", count))
	return theme.TabBar.Width(m.width).Render(tabs)
}

func (m Model) renderGrid(height int) string {
	now := m.repo.Now()
	cells := make([]string, len(m.notes))
	for i, n := range m.notes {
		cells[i] = renderCard(n, now, i == m.cursor)
	}

	cols := m.columns()
	cardHeight := lipgloss.Height(cells[0])
	visibleRows := 1
	if cardHeight > 0 && height > cardHeight {
		visibleRows = height / cardHeight
	}

	firstRow := 0
	if cursorRow := m.cursor / cols; cursorRow >= visibleRows {
		firstRow = cursorRow - visibleRows + 1
	}
	start := firstRow * cols
	end := min(start+visibleRows*cols, len(cells))

	return shared.Grid(cells[start:end], cols, cardGap)
}

func renderCard(n data.Note, now time.Time, focused bool) string {
	inner := cardWidth - 2

	lines := []string{cardTitleStyle.Render(shared.Truncate(n.Title, inner))}

	preview := strings.Split(strings.TrimRight(n.Content, "\n"), "\n")
	for i := 0; i < previewLines; i++ {
		line := ""
		if i < len(preview) {
			line = shared.Truncate(preview[i], inner)
		}
		lines = append(lines, cardPreviewStyle.Render(line))
	}

	lines = append(lines, captionStyle(n, now).Render(Caption(n, now)))

	style := cardStyle
	if focused {
		style = cardFocusedStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Caption is the "Expires in ..." line shown under a card
func Caption(n data.Note, now time.Time) string {
	text := expiry.Describe(n, now)
	if text == "now" {
		return "Expires now"
	}
	return "Expires in " + text
}

func captionStyle(n data.Note, now time.Time) lipgloss.Style {
	switch {
	case expiry.Remaining(n, now) <= time.Minute:
		return theme.ExpiresFinal
	case expiry.IsExpiringSoon(n, now):
		return theme.ExpiresSoon
	default:
		return theme.Expires
	}
}

var helpSections = []shared.HelpSection{
	{
		Title: "Board",
		Binds: []shared.HelpBind{
			{Key: "n", Desc: "New note"},
			{Key: "enter", Desc: "Edit selected note"},
			{Key: "d", Desc: "Delete selected note"},
			{Key: "s", Desc: "Toggle expiring soon"},
			{Key: "h/j/k/l", Desc: "Move between cards"},
			{Key: "?", Desc: "Show this help"},
			{Key: "q", Desc: "Quit"},
		},
	},
	{
		Title: "Editor",
		Binds: []shared.HelpBind{
			{Key: "tab", Desc: "Next field"},
			{Key: "left/right", Desc: "Change expiry"},
			{Key: "ctrl+s", Desc: "Save"},
			{Key: "esc", Desc: "Cancel"},
		},
	},
}

// Package editor is the form for writing a new note or changing an existing one.
package editor

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"discard/internal/expiry"
	"discard/internal/notes/data"
	"discard/internal/tui/messages"
	"discard/internal/tui/shared"
	"discard/internal/tui/theme"
)

type field int

const (
	fieldTitle field = iota
	fieldContent
	fieldExpiry
	fieldCount
)

const (
	defaultWidth  = 60
	contentHeight = 6
)

var (
	editorBoxStyle    = theme.ModalBox
	editorHelpStyle   = theme.ModalHelp
	bucketStyle       = theme.Muted
	bucketActiveStyle = theme.Selected.Underline(true)
)

// Model edits one note. The result is delivered as messages.EditorClosedMsg.
type Model struct {
	note  data.Note
	isNew bool

	title   textinput.Model
	content textarea.Model
	query   textinput.Model

	bucket        expiry.Bucket
	bucketChanged bool
	focus         field
	err           string

	now    func() time.Time
	width  int
	height int
}

// New opens the editor on n, or on a blank note when n is nil. A blank note
// starts with defaultBucket; an existing one shows the bucket nearest to its
// remaining time.
func New(n *data.Note, defaultBucket expiry.Bucket, now func() time.Time) Model {
	m := Model{
		title:   textinput.New(),
		content: textarea.New(),
		query:   textinput.New(),
		bucket:  defaultBucket,
		now:     now,
		width:   defaultWidth,
	}

	m.title.Placeholder = "Title"
	m.title.CharLimit = 256
	m.content.Placeholder = "Write something..."
	m.content.ShowLineNumbers = false
	m.content.SetHeight(contentHeight)
	m.query.Placeholder = "type to search, e.g. 6 mo"
	m.query.CharLimit = 32

	if n == nil {
		m.isNew = true
	} else {
		m.note = *n
		m.title.SetValue(n.Title)
		m.content.SetValue(n.Content)
		m.bucket = expiry.NearestBucket(expiry.Remaining(*n, now()))
	}

	m.setSize(defaultWidth, 0)
	m.focusField(fieldTitle)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize sets the space available to the editor
func (m *Model) SetSize(width, height int) {
	m.setSize(width, height)
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height

	inner := min(width, defaultWidth) - 6 // border and padding
	if inner < 20 {
		inner = 20
	}
	m.title.Width = inner
	m.content.SetWidth(inner)
	m.query.Width = inner
}

func (m Model) Bucket() expiry.Bucket { return m.bucket }
func (m Model) Err() string           { return m.err }
func (m Model) IsNew() bool           { return m.isNew }

func (m *Model) focusField(f field) {
	m.focus = f
	m.title.Blur()
	m.content.Blur()
	m.query.Blur()
	switch f {
	case fieldTitle:
		m.title.Focus()
	case fieldContent:
		m.content.Focus()
	case fieldExpiry:
		m.query.Focus()
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "ctrl+s":
		return m.save()
	case "esc":
		return m, closed(messages.EditorClosedMsg{Note: m.note, IsNew: m.isNew})
	case "tab":
		m.focusField((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab":
		m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	}

	if m.focus == fieldExpiry {
		switch keyMsg.String() {
		case "left":
			m.setBucket(m.bucket.Prev())
			return m, nil
		case "right":
			m.setBucket(m.bucket.Next())
			return m, nil
		}
	}

	m.err = ""
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldContent:
		m.content, cmd = m.content.Update(msg)
	case fieldExpiry:
		before := m.query.Value()
		m.query, cmd = m.query.Update(msg)
		if q := m.query.Value(); q != before && strings.TrimSpace(q) != "" {
			if b, err := expiry.MatchBucket(q); err == nil {
				m.bucket = b
				m.bucketChanged = true
			}
		}
	}
	return m, cmd
}

func (m *Model) setBucket(b expiry.Bucket) {
	m.bucket = b
	m.bucketChanged = true
	m.query.SetValue("")
}

// save validates the form and emits the note. Editing keeps the expiry
// instant unless a bucket was picked.
func (m Model) save() (Model, tea.Cmd) {
	title := strings.TrimSpace(m.title.Value())
	content := m.content.Value()
	now := m.now()

	var n data.Note
	if m.isNew {
		n = data.NewNote(title, content, m.bucket.Duration(), now)
	} else {
		n = m.note
		n.Title = title
		n.Content = content
		if m.bucketChanged {
			n.ExpiryDate = now.Add(m.bucket.Duration())
		}
	}

	if err := n.Validate(); err != nil {
		m.err = "A note needs a title"
		m.focusField(fieldTitle)
		return m, nil
	}

	return m, closed(messages.EditorClosedMsg{Note: n, IsNew: m.isNew, Saved: true})
}

func closed(msg messages.EditorClosedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m Model) View() string {
	heading := "Edit note"
	if m.isNew {
		heading = "New note"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(heading) + "\n\n")

	b.WriteString(m.label(fieldTitle, "Title") + "\n")
	b.WriteString(m.title.View() + "\n\n")

	b.WriteString(m.label(fieldContent, "Content") + "\n")
	b.WriteString(m.content.View() + "\n\n")

	b.WriteString(m.label(fieldExpiry, "Expires in") + "\n")
	b.WriteString(m.renderBuckets() + "\n")
	if m.focus == fieldExpiry {
		b.WriteString(m.query.View() + "\n")
	}
	if !m.isNew && !m.bucketChanged {
		b.WriteString(theme.Muted.Render("Currently expires in "+expiry.Describe(m.note, m.now())) + "\n")
	}

	if m.err != "" {
		b.WriteString("\n" + theme.Error.Render(m.err) + "\n")
	}

	b.WriteString("\n" + editorHelpStyle.Render("[tab] next field  [←/→] expiry  [ctrl+s] save  [esc] cancel"))

	box := editorBoxStyle.Width(min(m.width, defaultWidth)).Render(b.String())
	return shared.Overlay(box, m.width, m.height)
}

func (m Model) label(f field, text string) string {
	if m.focus == f {
		return theme.FieldLabelFocused.Render("> " + text)
	}
	return theme.FieldLabel.Render("  " + text)
}

func (m Model) renderBuckets() string {
	var items []string
	for _, bk := range expiry.Buckets() {
		if bk == m.bucket {
			items = append(items, bucketActiveStyle.Render(bk.String()))
		} else {
			items = append(items, bucketStyle.Render(bk.String()))
		}
	}

	width := min(m.width, defaultWidth) - 6
	var lines []string
	line := ""
	for _, it := range items {
		switch {
		case line == "":
			line = it
		case lipgloss.Width(line)+2+lipgloss.Width(it) > width:
			lines = append(lines, line)
			line = it
		default:
			line += "  " + it
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

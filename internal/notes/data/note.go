package data

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyTitle is returned by Validate for a note without a usable title
var ErrEmptyTitle = errors.New("title cannot be empty")

// Note is a user note that deletes itself once ExpiryDate has passed
type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ExpiryDate time.Time `json:"expiryDate"`
}

// NewNote creates a note with a fresh id that expires ttl after now
func NewNote(title, content string, ttl time.Duration, now time.Time) Note {
	return Note{
		ID:         uuid.NewString(),
		Title:      title,
		Content:    content,
		ExpiryDate: now.Add(ttl),
	}
}

// Validate reports whether the note may be persisted
func (n Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Equal compares all four fields, the expiry as an instant.
func (n Note) Equal(other Note) bool {
	return n.ID == other.ID &&
		n.Title == other.Title &&
		n.Content == other.Content &&
		n.ExpiryDate.Equal(other.ExpiryDate)
}

// ShortID returns the id prefix shown in listings
func (n Note) ShortID() string {
	if len(n.ID) < 8 {
		return n.ID
	}
	return n.ID[:8]
}

// EqualLists reports whether two lists hold equal notes in the same order
func EqualLists(a, b []Note) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"discard/internal/expiry"
	"discard/internal/logs"
	"discard/internal/notes/data"
)

// NoteRepository owns the ordered list of notes and keeps the store in sync
// with it. It is not safe for concurrent use; drive it from one goroutine.
type NoteRepository interface {
	List() []data.Note
	Get(id string) (data.Note, bool)
	Find(idPrefix string) (data.Note, error)
	Add(note data.Note)
	Update(note data.Note)
	Delete(note data.Note)
	ExpiringSoon() []data.Note
	PurgeExpired() []data.Note
	Reload()
	Subscribe() (<-chan Event, func())
	Now() time.Time
}

// Option configures a repository
type Option func(*noteRepository)

// WithClock replaces time.Now as the repository's notion of the current time
func WithClock(now func() time.Time) Option {
	return func(r *noteRepository) {
		r.now = now
	}
}

// WithKey stores the list under key instead of data.SaveKey
func WithKey(key string) Option {
	return func(r *noteRepository) {
		r.key = key
	}
}

const minPrefixLen = 4

type noteRepository struct {
	notes  []data.Note
	store  data.Store
	key    string
	now    func() time.Time
	events *eventHub
}

// NewNoteRepository loads the saved list from store. Missing or unreadable
// data starts an empty list.
func NewNoteRepository(store data.Store, opts ...Option) NoteRepository {
	r := &noteRepository{
		store:  store,
		key:    data.SaveKey,
		now:    time.Now,
		events: newEventHub(),
	}
	for _, opt := range opts {
		opt(r)
	}
	notes, err := r.load()
	if err != nil {
		logs.Logger.Printf("Could not load notes, starting empty: %v", err)
	}
	r.notes = notes
	return r
}

// load treats an absent record as an empty list
func (r *noteRepository) load() ([]data.Note, error) {
	notes, err := data.LoadNotes(r.store, r.key)
	if errors.Is(err, data.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// save is best effort: the in-memory list stays authoritative when it fails
func (r *noteRepository) save() {
	if err := data.SaveNotes(r.store, r.key, r.notes); err != nil {
		logs.Logger.Printf("Could not save notes: %v", err)
	}
}

func (r *noteRepository) Now() time.Time {
	return r.now()
}

func (r *noteRepository) List() []data.Note {
	out := make([]data.Note, len(r.notes))
	copy(out, r.notes)
	return out
}

func (r *noteRepository) Get(id string) (data.Note, bool) {
	for _, n := range r.notes {
		if n.ID == id {
			return n, true
		}
	}
	return data.Note{}, false
}

func (r *noteRepository) Find(idPrefix string) (data.Note, error) {
	if n, ok := r.Get(idPrefix); ok {
		return n, nil
	}
	if len(idPrefix) < minPrefixLen {
		return data.Note{}, fmt.Errorf("no note found with ID: %s", idPrefix)
	}

	var matches []data.Note
	for _, n := range r.notes {
		if strings.HasPrefix(n.ID, idPrefix) {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return data.Note{}, fmt.Errorf("no note found with ID: %s", idPrefix)
	case 1:
		return matches[0], nil
	default:
		return data.Note{}, fmt.Errorf("multiple notes match ID '%s', please be more specific", idPrefix)
	}
}

func (r *noteRepository) Add(note data.Note) {
	logs.Logger.Printf("Add note: %s", note.ID)
	r.notes = append(r.notes, note)
	r.save()
	r.events.publish(Event{Kind: EventAdded, Note: note})
}

func (r *noteRepository) Update(note data.Note) {
	for i, n := range r.notes {
		if n.ID == note.ID {
			logs.Logger.Printf("Update note: %s", note.ID)
			r.notes[i] = note
			r.save()
			r.events.publish(Event{Kind: EventUpdated, Note: note})
			return
		}
	}
	logs.Logger.Printf("Update note: %s not found, ignoring", note.ID)
}

func (r *noteRepository) Delete(note data.Note) {
	kept := make([]data.Note, 0, len(r.notes))
	var removed []data.Note
	for _, n := range r.notes {
		if n.ID == note.ID {
			removed = append(removed, n)
			continue
		}
		kept = append(kept, n)
	}
	if len(removed) == 0 {
		return
	}

	logs.Logger.Printf("Delete note: %s", note.ID)
	r.notes = kept
	r.save()
	for _, n := range removed {
		r.events.publish(Event{Kind: EventDeleted, Note: n})
	}
}

func (r *noteRepository) ExpiringSoon() []data.Note {
	now := r.now()
	var soon []data.Note
	for _, n := range r.notes {
		if expiry.IsExpiringSoon(n, now) {
			soon = append(soon, n)
		}
	}
	return soon
}

// PurgeExpired deletes every expired note with a single write and returns
// the deleted notes in list order.
func (r *noteRepository) PurgeExpired() []data.Note {
	now := r.now()
	kept := make([]data.Note, 0, len(r.notes))
	var purged []data.Note
	for _, n := range r.notes {
		if expiry.ShouldTriggerDeletion(n, now) {
			purged = append(purged, n)
			continue
		}
		kept = append(kept, n)
	}
	if len(purged) == 0 {
		return nil
	}

	logs.Logger.Printf("Purging %d expired note(s)", len(purged))
	r.notes = kept
	r.save()
	for _, n := range purged {
		r.events.publish(Event{Kind: EventDeleted, Note: n})
	}
	return purged
}

// Reload replaces the list with what the store holds now, for example after
// another process wrote to it. Unreadable data leaves the list as it is.
func (r *noteRepository) Reload() {
	notes, err := r.load()
	if err != nil {
		logs.Logger.Printf("Could not reload notes, keeping current list: %v", err)
		return
	}
	if data.EqualLists(notes, r.notes) {
		return
	}
	logs.Logger.Printf("Reloaded %d note(s) from store", len(notes))
	r.notes = notes
	r.events.publish(Event{Kind: EventReloaded})
}

func (r *noteRepository) Subscribe() (<-chan Event, func()) {
	return r.events.subscribe()
}

package data

import (
	"encoding/json"
	"fmt"
)

// EncodeNotes serializes the full note list. A nil list encodes as [].
func EncodeNotes(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	b, err := json.Marshal(notes)
	if err != nil {
		return nil, fmt.Errorf("encode notes: %w", err)
	}
	return b, nil
}

// DecodeNotes parses a list written by EncodeNotes
func DecodeNotes(b []byte) ([]Note, error) {
	var notes []Note
	if err := json.Unmarshal(b, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

// LoadNotes reads and decodes the list stored under key.
// Absent data yields ErrNotFound.
func LoadNotes(store Store, key string) ([]Note, error) {
	b, err := store.Load(key)
	if err != nil {
		return nil, err
	}
	return DecodeNotes(b)
}

// SaveNotes encodes the list and writes it under key
func SaveNotes(store Store, key string, notes []Note) error {
	b, err := EncodeNotes(notes)
	if err != nil {
		return err
	}
	return store.Save(key, b)
}

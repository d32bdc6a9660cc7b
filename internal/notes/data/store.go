package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// SaveKey is the fixed key the note list is stored under
const SaveKey = "savedNotes"

// ErrNotFound is returned by Store.Load when nothing is stored under a key
var ErrNotFound = errors.New("no data stored")

// Store is durable key-value storage for serialized note lists
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// FileStore keeps one <key>.json file per key inside Dir
type FileStore struct {
	Dir string
	mu  sync.Mutex
}

// NewFileStore creates a FileStore rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Path returns the file backing key
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

func (s *FileStore) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error reading %s: %w", s.Path(key), err)
	}
	return b, nil
}

// Save replaces the file atomically so a crash never leaves half a list behind
func (s *FileStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("error writing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error closing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.Path(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error replacing %s: %w", s.Path(key), err)
	}
	return nil
}

// MemoryStore is a Store that lives only as long as the process
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (s *MemoryStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, len(data))
	copy(b, data)
	s.records[key] = b
	return nil
}

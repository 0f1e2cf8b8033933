// Package storage provides the local key-value store that persists the
// catalog, the cart and the ticket info between sessions.
//
// Values are opaque byte blobs (JSON in practice). Writes are last-write-wins;
// there is no versioning or locking across processes.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Keys of the persisted application state.
const (
	KeyProducts   = "sv_productos"
	KeyCart       = "sv_carrito"
	KeyTicketInfo = "sv_ticket_info"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// KV is a minimal key-value store.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
}

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore keeps one file per key in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// Get reads the value of key.
func (s *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set writes value atomically: a temp file is written then renamed over
// the key file, so a crash never leaves a half-written value.
func (s *FileStore) Set(key string, value []byte) error {
	tmp := filepath.Join(s.dir, "."+key+"-"+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// =============================================================================
// MEMORY STORE
// =============================================================================

// MemoryStore is an in-memory KV, used in tests and for throwaway sessions.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = append([]byte(nil), value...)
	return nil
}

// =============================================================================
// JSON HELPERS
// =============================================================================

// LoadJSON decodes the value of key. A missing, unreadable or corrupt value
// yields def and false.
func LoadJSON[T any](kv KV, key string, def T) (T, bool) {
	data, err := kv.Get(key)
	if err != nil || len(data) == 0 {
		return def, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return def, false
	}
	return v, true
}

// SaveJSON encodes v and stores it under key.
func SaveJSON(kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return kv.Set(key, data)
}

// Package store persists the widget's collections as JSON blobs in a
// key-value backend. Load failures degrade to the caller's empty
// default and save failures are logged and swallowed: the in-memory
// state stays authoritative for the running session.
package store

import (
	"encoding/json"
	"log"
)

// Store is the typed layer over a Backend.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load unmarshals the named collection into v. When the collection is
// absent or unreadable, v is left at the caller's empty default and
// Load reports false. Errors are logged, never returned.
func (s *Store) Load(name string, v interface{}) bool {
	data, err := s.backend.Load(name)
	if err != nil {
		log.Printf("[store] Failed to load %s, starting empty: %v", name, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[store] Failed to parse %s, starting empty: %v", name, err)
		return false
	}
	return true
}

// Save marshals v and writes it as the full contents of the named
// collection. Failures are logged and otherwise ignored.
func (s *Store) Save(name string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("[store] Failed to serialize %s: %v", name, err)
		return
	}
	if err := s.backend.Save(name, data); err != nil {
		log.Printf("[store] Failed to save %s: %v", name, err)
	}
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

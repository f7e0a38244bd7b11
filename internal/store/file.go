package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend stores each collection as a JSON file under dir.
type FileBackend struct {
	dir string
}

// NewFileBackend ensures dir exists and returns a backend writing
// one <name>.json file per collection into it.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

func (f *FileBackend) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(f.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (f *FileBackend) Save(name string, data []byte) error {
	if err := os.WriteFile(f.path(name), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (f *FileBackend) Close() error {
	return nil
}

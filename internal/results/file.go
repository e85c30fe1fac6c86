package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the whole log as one JSON array on disk, the same
// layout the browser kept under its localStorage key. A corrupt file reads
// as empty rather than failing the session.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("result dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, StorageKey+".json")}, nil
}

func (s *FileStore) Append(_ context.Context, r StoredResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.read()
	all = append(all, r)
	buf, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, buf, 0o644)
}

func (s *FileStore) Latest(_ context.Context, sessionFilename string) (StoredResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return latest(s.read(), sessionFilename)
}

func (s *FileStore) All(_ context.Context) ([]StoredResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(), nil
}

func (s *FileStore) read() []StoredResult {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("results: read %s: %v", s.path, err)
		}
		return nil
	}
	var all []StoredResult
	if err := json.Unmarshal(data, &all); err != nil {
		log.Printf("results: corrupt %s, starting empty: %v", s.path, err)
		return nil
	}
	return all
}

// Package storage persists loom's local state as JSON files.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Record describes one completed scaffold run.
type Record struct {
	Blueprint string    `json:"blueprint"`
	Project   string    `json:"project"`
	Path      string    `json:"path"`
	Files     int       `json:"files"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryStore keeps scaffold history in a local JSON file.
type HistoryStore struct {
	mu  sync.Mutex
	dir string
}

// NewHistoryStore creates a history store at the given directory.
func NewHistoryStore(dir string) *HistoryStore {
	return &HistoryStore{dir: dir}
}

func (s *HistoryStore) filePath() string {
	return filepath.Join(s.dir, "history.json")
}

// Append adds a record to the history, stamping it with the current time.
func (s *HistoryStore) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readUnsafe()
	if err != nil {
		records = nil // start fresh if the file is corrupted
	}

	rec.CreatedAt = time.Now()
	records = append(records, rec)

	return s.writeUnsafe(records)
}

// List returns all records, oldest first.
func (s *HistoryStore) List() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readUnsafe()
}

// Recent returns the last n records.
func (s *HistoryStore) Recent(n int) ([]Record, error) {
	records, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(records) <= n {
		return records, nil
	}
	return records[len(records)-n:], nil
}

// Clear removes all records.
func (s *HistoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeUnsafe(nil)
}

func (s *HistoryStore) readUnsafe() ([]Record, error) {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	return records, nil
}

func (s *HistoryStore) writeUnsafe(records []Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	return os.WriteFile(s.filePath(), data, 0o644)
}

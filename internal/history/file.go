package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// fileRecord is the on-disk shape: the weekday plus a JSON-encoded chat
// payload carrying the rest of the entry.
type fileRecord struct {
	Day  string `json:"day"`
	Chat string `json:"chat"`
}

type chatPayload struct {
	ID             string `json:"id,omitempty"`
	Text           string `json:"text"`
	Timestamp      int64  `json:"timestamp"`
	Kind           Kind   `json:"kind"`
	Category       string `json:"category,omitempty"`
	RestaurantName string `json:"restaurantName,omitempty"`
}

// FileStore persists entries as a JSON array on disk. All access goes
// through a mutex and rewrites land via a temp file plus rename, so
// concurrent appends cannot lose records.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append adds one entry to the log.
func (s *FileStore) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().Unix()
	}

	payload, err := json.Marshal(chatPayload{
		ID:             e.ID,
		Text:           e.RawText,
		Timestamp:      e.Timestamp,
		Kind:           e.Kind,
		Category:       e.Category,
		RestaurantName: e.RestaurantName,
	})
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}

	records = append(records, fileRecord{Day: e.Weekday.String(), Chat: string(payload)})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing history file: %w", err)
	}
	return nil
}

// ReadAll returns entries, optionally filtered to one weekday. Records
// whose chat payload cannot be parsed are skipped, not fatal.
func (s *FileStore) ReadAll(weekday *time.Weekday) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, r := range records {
		day, err := ParseWeekday(r.Day)
		if err != nil {
			log.Printf("history: skipping record with unknown day %q", r.Day)
			continue
		}
		if weekday != nil && day != *weekday {
			continue
		}

		var p chatPayload
		if err := json.Unmarshal([]byte(r.Chat), &p); err != nil {
			log.Printf("history: skipping malformed chat payload: %v", err)
			continue
		}

		entries = append(entries, Entry{
			ID:             p.ID,
			Weekday:        day,
			RawText:        p.Text,
			Timestamp:      p.Timestamp,
			Kind:           p.Kind,
			Category:       p.Category,
			RestaurantName: p.RestaurantName,
		})
	}
	return entries, nil
}

func (s *FileStore) load() ([]fileRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []fileRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("history file corrupted: %w", err)
	}
	return records, nil
}

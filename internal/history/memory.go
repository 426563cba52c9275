package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a concurrency-safe in-memory history store. Used in tests
// and as the default backend when no history file is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds one entry to the log.
func (s *MemoryStore) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().Unix()
	}
	s.entries = append(s.entries, e)
	return nil
}

// ReadAll returns entries, optionally filtered to one weekday.
func (s *MemoryStore) ReadAll(weekday *time.Weekday) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Entry
	for _, e := range s.entries {
		if weekday != nil && e.Weekday != *weekday {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

package memory

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/mercellinas/mia-bot/internal/domain"
)

// TimestampLayout is how entries are stamped in the history file.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// SessionLog keeps every free-text message per user until shutdown.
// It is NOT persistent: Flush writes it out once.
type SessionLog struct {
	mu      sync.RWMutex
	entries map[domain.UserID][]domain.LogEntry
	order   []domain.UserID
}

func NewSessionLog() *SessionLog {
	return &SessionLog{
		entries: make(map[domain.UserID][]domain.LogEntry),
	}
}

func (s *SessionLog) Append(userID domain.UserID, entry domain.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, seen := s.entries[userID]; !seen {
		s.order = append(s.order, userID)
	}
	s.entries[userID] = append(s.entries[userID], entry)
	return nil
}

// Entries returns a copy of one user's log.
func (s *SessionLog) Entries(userID domain.UserID) []domain.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LogEntry, len(s.entries[userID]))
	copy(out, s.entries[userID])
	return out
}

// Snapshot returns every user's log, users in first-seen order.
func (s *SessionLog) Snapshot() []domain.UserLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.UserLog, 0, len(s.order))
	for _, id := range s.order {
		entries := make([]domain.LogEntry, len(s.entries[id]))
		copy(entries, s.entries[id])
		out = append(out, domain.UserLog{UserID: id, Entries: entries})
	}
	return out
}

// Flush overwrites path with one stanza per user:
//
//	User ID: <id>
//	<timestamp>: <message>
//	<blank line>
func (s *SessionLog) Flush(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating history file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, ul := range s.Snapshot() {
		fmt.Fprintf(w, "User ID: %s\n", ul.UserID)
		for _, e := range ul.Entries {
			fmt.Fprintf(w, "%s: %s\n", e.Timestamp.Format(TimestampLayout), e.Text)
		}
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing history file: %w", err)
	}
	return f.Close()
}

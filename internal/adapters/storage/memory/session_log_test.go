package memory_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercellinas/mia-bot/internal/adapters/storage/memory"
	"github.com/mercellinas/mia-bot/internal/domain"
)

func at(sec int) time.Time {
	return time.Date(2024, 3, 1, 10, 0, sec, 250000000, time.UTC)
}

func TestFlushWritesStanzasInFirstSeenOrder(t *testing.T) {
	log := memory.NewSessionLog()
	require.NoError(t, log.Append("42", domain.LogEntry{Timestamp: at(1), Text: "hi"}))
	require.NoError(t, log.Append("7", domain.LogEntry{Timestamp: at(2), Text: "bob wig?"}))
	require.NoError(t, log.Append("42", domain.LogEntry{Timestamp: at(3), Text: "thanks"}))

	path := filepath.Join(t.TempDir(), "chat_history.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	require.NoError(t, log.Flush(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "User ID: 42\n" +
		"2024-03-01 10:00:01.250000: hi\n" +
		"2024-03-01 10:00:03.250000: thanks\n" +
		"\n" +
		"User ID: 7\n" +
		"2024-03-01 10:00:02.250000: bob wig?\n" +
		"\n"
	assert.Equal(t, want, string(got))
}

func TestFlushEmptyLogTruncatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat_history.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, memory.NewSessionLog().Flush(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFlushBadPath(t *testing.T) {
	err := memory.NewSessionLog().Flush(filepath.Join(t.TempDir(), "missing", "x.txt"))
	assert.Error(t, err)
}

func TestConcurrentAppendsSameUser(t *testing.T) {
	log := memory.NewSessionLog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = log.Append("1", domain.LogEntry{Timestamp: time.Now(), Text: "msg"})
		}()
	}
	wg.Wait()

	assert.Len(t, log.Entries("1"), 50)
	assert.Len(t, log.Snapshot(), 1)
}

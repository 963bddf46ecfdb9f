package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercellinas/mia-bot/internal/adapters/llm"
	memstore "github.com/mercellinas/mia-bot/internal/adapters/storage/memory"
	"github.com/mercellinas/mia-bot/internal/config"
	"github.com/mercellinas/mia-bot/internal/domain"
)

func TestNewStreamerMock(t *testing.T) {
	s, err := newStreamer(context.Background(), &config.Config{Provider: config.ProviderMock})
	require.NoError(t, err)
	assert.IsType(t, &llm.MockLLM{}, s)
}

func TestNewStreamerTogetherNeedsKey(t *testing.T) {
	_, err := newStreamer(context.Background(), &config.Config{Provider: config.ProviderTogether})
	assert.Error(t, err)
}

func TestSaveHistoryWritesFile(t *testing.T) {
	sessions := memstore.NewSessionLog()
	ts := time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)
	require.NoError(t, sessions.Append("12", domain.LogEntry{Timestamp: ts, Text: "hi"}))

	path := filepath.Join(t.TempDir(), "chat_history.txt")
	require.NoError(t, saveHistory(sessions, path, nil))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "User ID: 12\n2024-02-02 08:00:00.000000: hi\n\n", string(got))
}

func TestWriteHistoryMatchesFileLayout(t *testing.T) {
	ts := time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)
	logs := []domain.UserLog{{UserID: "12", Entries: []domain.LogEntry{{Timestamp: ts, Text: "hi"}}}}

	var buf bytes.Buffer
	writeHistory(&buf, logs)
	assert.Equal(t, "User ID: 12\n2024-02-02 08:00:00.000000: hi\n\n", buf.String())
}

func TestAskWithMockProvider(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MIA_LLM_PROVIDER", "mock")
	t.Setenv("MIA_STORAGE_BACKEND", "memory")

	var out bytes.Buffer
	askCmd.SetOut(&out)
	askCmd.SetContext(context.Background())
	require.NoError(t, askCmd.RunE(askCmd, []string{"where", "is", "your", "location?"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "📸 Instagram: @mercellinas_hair", lines[len(lines)-1])
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bafoka-network/voice-assistant/internal/config"
)

func newTestAudioStore(t *testing.T) *LocalAudioStore {
	t.Helper()
	store, err := NewLocalAudioStore(config.Config{
		AudioStoragePath: t.TempDir(),
		AudioBaseURL:     "http://localhost:8000/audio/",
	})
	require.NoError(t, err)
	return store
}

func TestSaveResponseWritesFileAndURL(t *testing.T) {
	t.Parallel()

	store := newTestAudioStore(t)
	store.now = func() time.Time { return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC) }

	url, err := store.SaveResponse(context.Background(), "conv-abc", []byte("RIFF"), "wav")
	require.NoError(t, err)

	assert.Regexp(t, `^http://localhost:8000/audio/responses/conv-abc/response_20250601_093000_[0-9a-f]{8}\.wav$`, url)

	entries, err := os.ReadDir(filepath.Join(store.responsesPath, "conv-abc"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(store.responsesPath, "conv-abc", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF"), data)
}

func TestSaveResponseRejectsTraversal(t *testing.T) {
	t.Parallel()

	store := newTestAudioStore(t)
	_, err := store.SaveResponse(context.Background(), "../escape", []byte("x"), "wav")
	assert.Error(t, err)
}

func TestCleanupRemovesOldFiles(t *testing.T) {
	t.Parallel()

	store := newTestAudioStore(t)
	ctx := context.Background()

	_, err := store.SaveResponse(ctx, "conv-old", []byte("old"), "wav")
	require.NoError(t, err)
	_, err = store.SaveResponse(ctx, "conv-new", []byte("new"), "wav")
	require.NoError(t, err)

	// Age the first conversation's file two days back.
	oldDir := filepath.Join(store.responsesPath, "conv-old")
	entries, err := os.ReadDir(oldDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(oldDir, entries[0].Name()), past, past))

	removed, err := store.Cleanup(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	remaining, err := os.ReadDir(oldDir)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	kept, err := os.ReadDir(filepath.Join(store.responsesPath, "conv-new"))
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestResolveServedFile(t *testing.T) {
	t.Parallel()

	store := newTestAudioStore(t)
	ctx := context.Background()

	url, err := store.SaveResponse(ctx, "conv-x", []byte("RIFF"), "wav")
	require.NoError(t, err)

	// The served path is everything after the /audio prefix.
	rel := url[len("http://localhost:8000/audio"):]
	full, err := store.ResolveServedFile(rel)
	require.NoError(t, err)
	assert.FileExists(t, full)

	_, err = store.ResolveServedFile("../../etc/passwd")
	assert.ErrorIs(t, err, ErrPathEscapes)

	_, err = store.ResolveServedFile("/responses/conv-x/nope.wav")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestMediaType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		filename string
		want     string
	}{
		{"reply.wav", "audio/wav"},
		{"reply.WAV", "audio/wav"},
		{"reply.mp3", "audio/mpeg"},
		{"reply.ogg", "audio/ogg"},
		{"reply.oga", "audio/ogg"},
		{"reply.webm", "audio/webm"},
		{"reply.bin", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MediaType(tc.filename), tc.filename)
	}
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bafoka-network/voice-assistant/internal/config"
)

// LocalAudioStore writes synthesized replies to disk under
// {base}/responses/{conversationID}/ and hands out URLs the audio
// routes can serve back.
type LocalAudioStore struct {
	basePath      string
	responsesPath string
	uploadsPath   string
	baseURL       string
	now           func() time.Time
}

func NewLocalAudioStore(cfg config.Config) (*LocalAudioStore, error) {
	s := &LocalAudioStore{
		basePath:      cfg.AudioStoragePath,
		responsesPath: filepath.Join(cfg.AudioStoragePath, "responses"),
		uploadsPath:   filepath.Join(cfg.AudioStoragePath, "uploads"),
		baseURL:       strings.TrimRight(cfg.AudioBaseURL, "/"),
		now:           time.Now,
	}
	for _, dir := range []string{s.responsesPath, s.uploadsPath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create audio dir %s: %w", dir, err)
		}
	}
	return s, nil
}

func (s *LocalAudioStore) SaveResponse(_ context.Context, conversationID string, data []byte, extension string) (string, error) {
	dir := filepath.Join(s.responsesPath, conversationID)
	// Conversation IDs come from clients, so refuse anything that
	// would land outside the responses tree.
	rel, err := filepath.Rel(s.responsesPath, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid conversation id: %s", conversationID)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create response dir: %w", err)
	}

	filename := generateFilename(s.now(), "response", extension)
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	return fmt.Sprintf("%s/responses/%s/%s", s.baseURL, url.PathEscape(conversationID), url.PathEscape(filename)), nil
}

// Cleanup removes stored audio older than maxAge and reports how many
// files were deleted. Run periodically so the disk does not fill up.
func (s *LocalAudioStore) Cleanup(_ context.Context, maxAge time.Duration) (int, error) {
	cutoff := s.now().Add(-maxAge)
	removed := 0

	for _, root := range []string{s.responsesPath, s.uploadsPath} {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			if info.ModTime().Before(cutoff) {
				if err := os.Remove(path); err == nil {
					removed++
				}
			}
			return nil
		})
		if err != nil {
			return removed, fmt.Errorf("audio cleanup walk failed: %w", err)
		}
	}
	return removed, nil
}

// Served-file failures the audio routes tell apart: a traversal attempt
// is refused, a missing file is just not there.
var (
	ErrPathEscapes  = errors.New("path escapes audio storage")
	ErrFileNotFound = errors.New("audio file not found")
)

// ResolveServedFile maps a URL path under /audio to a file inside the
// storage root, rejecting traversal attempts.
func (s *LocalAudioStore) ResolveServedFile(urlPath string) (string, error) {
	full := filepath.Join(s.basePath, filepath.FromSlash(urlPath))
	rel, err := filepath.Rel(s.basePath, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapes, urlPath)
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, urlPath)
	}
	return full, nil
}

func generateFilename(ts time.Time, prefix, extension string) string {
	extension = strings.TrimPrefix(extension, ".")
	unique := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s_%s.%s", prefix, ts.Format("20060102_150405"), unique, extension)
}

// MediaType returns the content type to serve an audio file with.
func MediaType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".ogg", ".oga":
		return "audio/ogg"
	case ".webm":
		return "audio/webm"
	default:
		return "application/octet-stream"
	}
}

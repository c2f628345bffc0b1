package speech

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bafoka-network/voice-assistant/internal/config"
)

type fakeSTT struct {
	gotFilename string
}

func (f *fakeSTT) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	f.gotFilename = filename
	return "transcribed", nil
}

type fakeTTS struct {
	gotText string
}

func (f *fakeTTS) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	f.gotText = text
	return []byte("audio"), "wav", nil
}

func TestServiceForwardsToProviders(t *testing.T) {
	stt := &fakeSTT{}
	tts := &fakeTTS{}
	svc := NewService(stt, tts)

	text, err := svc.Transcribe(context.Background(), []byte("a"), "voice.ogg")
	require.NoError(t, err)
	assert.Equal(t, "transcribed", text)
	assert.Equal(t, "voice.ogg", stt.gotFilename)

	data, ext, err := svc.Synthesize(context.Background(), "bonjour")
	require.NoError(t, err)
	assert.Equal(t, []byte("audio"), data)
	assert.Equal(t, "wav", ext)
	assert.Equal(t, "bonjour", tts.gotText)
}

func TestNewServiceFromConfigRejectsUnknownSTT(t *testing.T) {
	cfg := config.Config{STTProvider: "siri", TTSProvider: "openai"}

	_, err := NewServiceFromConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "siri")
}

func TestNewServiceFromConfigRejectsUnknownTTS(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	cfg := config.Config{STTProvider: "whisper", TTSProvider: "espeak"}

	_, err := NewServiceFromConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "espeak")
}

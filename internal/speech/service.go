package speech

import (
	"context"
	"errors"
	"fmt"

	"github.com/bafoka-network/voice-assistant/internal/config"
)

// ErrDisabled is returned when the provider slot is configured to "none".
var ErrDisabled = errors.New("speech provider disabled")

// Service bundles one STT and one TTS provider behind a single facade.
// Either slot may be nil, which turns its calls into ErrDisabled.
type Service struct {
	stt STTClient
	tts TTSClient
}

func NewService(stt STTClient, tts TTSClient) *Service {
	return &Service{
		stt: stt,
		tts: tts,
	}
}

// Download fetches caller-supplied audio, see DownloadAudio.
func (s *Service) Download(ctx context.Context, url string) ([]byte, error) {
	return DownloadAudio(ctx, url)
}

func (s *Service) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if s.stt == nil {
		return "", ErrDisabled
	}
	return s.stt.Transcribe(ctx, audio, filename)
}

func (s *Service) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	if s.tts == nil {
		return nil, "", ErrDisabled
	}
	return s.tts.Synthesize(ctx, text)
}

// NewServiceFromConfig picks providers by STT_PROVIDER / TTS_PROVIDER.
func NewServiceFromConfig(cfg config.Config) (*Service, error) {
	var stt STTClient
	switch cfg.STTProvider {
	case "openai", "whisper":
		stt = NewOpenAISTT()
	case "deepgram":
		stt = NewDeepgramClient()
	case "none":
		stt = nil
	default:
		return nil, fmt.Errorf("unknown STT provider: %s", cfg.STTProvider)
	}

	var tts TTSClient
	switch cfg.TTSProvider {
	case "openai":
		tts = NewOpenAITTS(cfg)
	case "elevenlabs":
		tts = NewElevenLabsClient()
	case "none":
		tts = nil
	default:
		return nil, fmt.Errorf("unknown TTS provider: %s", cfg.TTSProvider)
	}

	return NewService(stt, tts), nil
}

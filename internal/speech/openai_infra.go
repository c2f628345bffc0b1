package speech

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bafoka-network/voice-assistant/internal/config"
)

// OpenAISTT transcribes through the hosted Whisper API.
type OpenAISTT struct {
	client *openai.Client
}

func NewOpenAISTT() *OpenAISTT {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}
	return &OpenAISTT{
		client: openai.NewClient(apiKey),
	}
}

func (c *OpenAISTT) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

type OpenAITTS struct {
	client *openai.Client
	voice  openai.SpeechVoice
	format openai.SpeechResponseFormat
	ext    string
}

func NewOpenAITTS(cfg config.Config) *OpenAITTS {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}

	voice := openai.SpeechVoice(os.Getenv("OPENAI_TTS_VOICE"))
	if voice == "" {
		voice = openai.VoiceAlloy
	}

	format, ext := speechFormat(cfg.AudioFormat)

	return &OpenAITTS{
		client: openai.NewClient(apiKey),
		voice:  voice,
		format: format,
		ext:    ext,
	}
}

func speechFormat(audioFormat string) (openai.SpeechResponseFormat, string) {
	switch audioFormat {
	case "mp3":
		return openai.SpeechResponseFormatMp3, "mp3"
	case "opus":
		return openai.SpeechResponseFormatOpus, "opus"
	default:
		return openai.SpeechResponseFormatWav, "wav"
	}
}

func (c *OpenAITTS) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          c.voice,
		ResponseFormat: c.format,
	})
	if err != nil {
		return nil, "", err
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, "", err
	}
	return data, c.ext, nil
}

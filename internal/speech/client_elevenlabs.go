package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

const defaultElevenLabsVoice = "EXAVITQu4vr4xnSDxMaL"

type ElevenLabsClient struct {
	apiKey  string
	voiceID string
	baseURL string
}

func NewElevenLabsClient() *ElevenLabsClient {
	key := os.Getenv("ELEVENLABS_API_KEY")
	if key == "" {
		panic("ELEVENLABS_API_KEY not set")
	}

	voice := os.Getenv("ELEVENLABS_VOICE_ID")
	if voice == "" {
		voice = defaultElevenLabsVoice
	}

	return &ElevenLabsClient{
		apiKey:  key,
		voiceID: voice,
		baseURL: "https://api.elevenlabs.io",
	}
}

// TEXT → SPEECH
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, c.voiceID)

	payload := []byte(fmt.Sprintf(`{"text": %q}`, text))

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, "", fmt.Errorf("tts failed: %s", string(b))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return data, "mp3", nil
}

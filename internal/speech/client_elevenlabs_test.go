package speech

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElevenLabsSynthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/voice-1", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))
		assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"text": "Votre solde est de 2500 BAFOKA."}`, string(body))

		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	client := &ElevenLabsClient{apiKey: "test-key", voiceID: "voice-1", baseURL: srv.URL}

	data, ext, err := client.Synthesize(context.Background(), "Votre solde est de 2500 BAFOKA.")
	require.NoError(t, err)
	assert.Equal(t, "mp3", ext)
	assert.Equal(t, []byte("mp3-bytes"), data)
}

func TestElevenLabsSynthesizeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("invalid api key"))
	}))
	defer srv.Close()

	client := &ElevenLabsClient{apiKey: "bad", voiceID: "voice-1", baseURL: srv.URL}

	_, _, err := client.Synthesize(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

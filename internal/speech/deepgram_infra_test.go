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

func newTestDeepgram(url string) *DeepgramClient {
	return &DeepgramClient{
		apiKey: "test-key",
		url:    url,
		client: &http.Client{},
	}
}

func TestDeepgramTranscribe(t *testing.T) {
	audio := []byte("fake-ogg-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "audio/ogg", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, audio, body)

		w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":"bonjour, quel est mon solde"}]}]}}`))
	}))
	defer srv.Close()

	text, err := newTestDeepgram(srv.URL).Transcribe(context.Background(), audio, "note.ogg")
	require.NoError(t, err)
	assert.Equal(t, "bonjour, quel est mon solde", text)
}

func TestDeepgramTranscribeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"err_msg":"unsupported encoding"}`))
	}))
	defer srv.Close()

	_, err := newTestDeepgram(srv.URL).Transcribe(context.Background(), []byte("x"), "note.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestDeepgramTranscribeEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":{"channels":[]}}`))
	}))
	defer srv.Close()

	_, err := newTestDeepgram(srv.URL).Transcribe(context.Background(), []byte("x"), "note.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty transcript")
}

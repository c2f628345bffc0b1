package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadAudio(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("RIFFxxxxWAVE"))
	}))
	t.Cleanup(srv.Close)

	data, err := DownloadAudio(context.Background(), srv.URL+"/note.wav")
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFFxxxxWAVE"), data)
}

func TestDownloadAudioBadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	_, err := DownloadAudio(context.Background(), srv.URL+"/gone.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestDownloadAudioEmptyBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	_, err := DownloadAudio(context.Background(), srv.URL+"/empty.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty audio")
}

package delivery

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bafoka-network/voice-assistant/internal/storage"
)

// AudioHandler serves generated speech files straight off disk.
type AudioHandler struct {
	store *storage.LocalAudioStore
}

func NewAudioHandler(store *storage.LocalAudioStore) *AudioHandler {
	return &AudioHandler{store: store}
}

func (h *AudioHandler) Serve(w http.ResponseWriter, r *http.Request) {
	full, err := h.store.ResolveServedFile(chi.URLParam(r, "*"))
	switch {
	case errors.Is(err, storage.ErrPathEscapes):
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	case errors.Is(err, storage.ErrFileNotFound):
		http.Error(w, "Audio file not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", storage.MediaType(full))
	http.ServeFile(w, r, full)
}

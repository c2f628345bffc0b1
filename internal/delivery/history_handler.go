package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

// HistoryHandler exposes stored conversation turns and the audit trail
// to the admin panel.
type HistoryHandler struct {
	turns ports.TurnRepo
	audit ports.AuditRepo
	log   *logger.ZapLogger
}

func NewHistoryHandler(turns ports.TurnRepo, audit ports.AuditRepo, log *logger.ZapLogger) *HistoryHandler {
	return &HistoryHandler{turns: turns, audit: audit, log: log}
}

func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversation_id")
	if conversationID == "" {
		http.Error(w, "missing conversation_id", http.StatusBadRequest)
		return
	}
	if h.turns == nil {
		http.Error(w, "history storage not configured", http.StatusServiceUnavailable)
		return
	}

	limit := queryInt(r, "limit", 50)
	turns, err := h.turns.GetRecent(r.Context(), conversationID, limit)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "history query failed", Service: "delivery", Error: err})
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"turns": turns, "count": len(turns)})
}

func (h *HistoryHandler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversation_id")
	if conversationID == "" {
		http.Error(w, "missing conversation_id", http.StatusBadRequest)
		return
	}
	if h.turns == nil {
		http.Error(w, "history storage not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.turns.DeleteByConversation(r.Context(), conversationID); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "history delete failed", Service: "delivery", Error: err})
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": conversationID})
}

func (h *HistoryHandler) GetAuditTrail(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		http.Error(w, "missing user_id", http.StatusBadRequest)
		return
	}
	if h.audit == nil {
		http.Error(w, "audit storage not configured", http.StatusServiceUnavailable)
		return
	}

	limit := queryInt(r, "limit", 50)
	events, err := h.audit.ListByUser(r.Context(), userID, limit)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "audit query failed", Service: "delivery", Error: err})
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"events": events, "count": len(events)})
}

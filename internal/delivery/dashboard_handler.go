package delivery

import (
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

// DashboardHandler proxies the Bafoka dashboard endpoints for the ops
// panel, behind the admin API key.
type DashboardHandler struct {
	backend ports.BafokaClient
	log     *logger.ZapLogger
}

func NewDashboardHandler(backend ports.BafokaClient, log *logger.ZapLogger) *DashboardHandler {
	return &DashboardHandler{backend: backend, log: log}
}

func (h *DashboardHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	limit := queryInt(r, "limit", 10)

	txs, err := h.backend.DashboardTransactions(r.Context(), phone, limit)
	if err != nil {
		h.fail(w, "dashboard transactions", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": txs, "count": len(txs)})
}

func (h *DashboardHandler) TransactionAmount(w http.ResponseWriter, r *http.Request) {
	summary, err := h.backend.TransactionAmount(r.Context())
	if err != nil {
		h.fail(w, "dashboard transaction amount", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *DashboardHandler) Registrations(w http.ResponseWriter, r *http.Request) {
	stats, err := h.backend.RegistrationStats(r.Context())
	if err != nil {
		h.fail(w, "dashboard registrations", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) Holders(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)
	page := queryInt(r, "page", 1)

	holders, err := h.backend.AccountHolders(r.Context(), limit, page)
	if err != nil {
		h.fail(w, "dashboard holders", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"holders": holders, "count": len(holders)})
}

func (h *DashboardHandler) fail(w http.ResponseWriter, what string, err error) {
	h.log.Log(logger.LogEntry{Level: "error", Message: what + " failed", Service: "delivery", Error: err})
	writeError(w, http.StatusBadGateway, codeProcessing, "backend unavailable")
}

func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/bafoka-network/voice-assistant/internal/prompts"
)

func RegisterRoutes(
	r chi.Router,
	h *AssistantHandler,
	hAudio *AudioHandler,
	hDash *DashboardHandler,
	hHistory *HistoryHandler,
	hPrompts *prompts.Handler,
	adminKey string,
) {
	// --- service info ---
	r.With(httputil.RecoverMiddleware).Get("/", h.Info)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(httputil.RecoverMiddleware)

		api.Get("/health", h.Health)

		// --- messages ---
		api.Group(func(msg chi.Router) {
			msg.Use(httprate.LimitByIP(30, time.Minute))
			msg.Post("/chat/message", h.ChatMessage)
			msg.Post("/voice/message", h.VoiceMessage)
		})

		// --- ops dashboard ---
		api.Route("/dashboard", func(dash chi.Router) {
			dash.Use(APIKeyMiddleware(adminKey))
			dash.Get("/transactions", hDash.Transactions)
			dash.Get("/transaction-amount", hDash.TransactionAmount)
			dash.Get("/registrations", hDash.Registrations)
			dash.Get("/holders", hDash.Holders)
		})

		// --- admin ---
		api.Route("/admin", func(adm chi.Router) {
			adm.Use(APIKeyMiddleware(adminKey))
			adm.Get("/history/{conversation_id}", hHistory.GetHistory)
			adm.Delete("/history/{conversation_id}", hHistory.DeleteHistory)
			adm.Get("/audit/{user_id}", hHistory.GetAuditTrail)
			adm.Get("/prompts", hPrompts.List)
			adm.Put("/prompts/{flow}/{key}", hPrompts.Update)
		})
	})

	// --- generated audio ---
	r.With(httputil.RecoverMiddleware).Get("/audio/*", hAudio.Serve)
}

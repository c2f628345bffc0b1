package delivery

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"

	"github.com/bafoka-network/voice-assistant/internal/config"
	"github.com/bafoka-network/voice-assistant/internal/ports"
)

const maxTextLen = 1000

// AssistantHandler serves the chat and voice message endpoints plus the
// service info and health probes.
type AssistantHandler struct {
	svc      ports.AssistantService
	appName  string
	version  string
	services map[string]string
	log      *logger.ZapLogger
}

// NewAssistantHandler takes a snapshot of the wired dependencies for the
// health endpoint; services maps a dependency name to its status.
func NewAssistantHandler(svc ports.AssistantService, cfg config.Config, services map[string]string, log *logger.ZapLogger) *AssistantHandler {
	return &AssistantHandler{
		svc:      svc,
		appName:  cfg.AppName,
		version:  cfg.AppVersion,
		services: services,
		log:      log,
	}
}

func (h *AssistantHandler) ChatMessage(w http.ResponseWriter, r *http.Request) {
	var req textMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid json: "+err.Error())
		return
	}
	if msg := validateTextRequest(req); msg != "" {
		writeError(w, http.StatusBadRequest, codeValidation, msg)
		return
	}

	includeAudio, _ := strconv.ParseBool(r.URL.Query().Get("includeAudio"))

	res, err := h.svc.ProcessText(r.Context(), ports.TextTurn{
		UserID:         req.UserID,
		ConversationID: req.ConversationID,
		PhoneNumber:    req.PhoneNumber,
		Text:           req.Text,
		IncludeAudio:   includeAudio,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, buildResponse(req.UserID, req.ConversationID, res))
}

func (h *AssistantHandler) VoiceMessage(w http.ResponseWriter, r *http.Request) {
	var req voiceMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid json: "+err.Error())
		return
	}
	if msg := validateVoiceRequest(req); msg != "" {
		writeError(w, http.StatusBadRequest, codeValidation, msg)
		return
	}

	res, err := h.svc.ProcessVoice(r.Context(), ports.VoiceTurn{
		UserID:         req.UserID,
		ConversationID: req.ConversationID,
		PhoneNumber:    req.PhoneNumber,
		AudioURL:       req.AudioURL,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, buildResponse(req.UserID, req.ConversationID, res))
}

func (h *AssistantHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Services:  h.services,
		Timestamp: time.Now().UTC(),
	})
}

func (h *AssistantHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    h.appName,
		"version": h.version,
		"status":  "running",
	})
}

func (h *AssistantHandler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ports.ErrAudioDownload):
		writeError(w, http.StatusBadRequest, codeAudioDownload, "Failed to download audio file")
	case errors.Is(err, ports.ErrTranscription):
		writeError(w, http.StatusBadRequest, codeTranscription, "Failed to transcribe audio")
	default:
		h.log.Log(logger.LogEntry{Level: "error", Message: "turn processing failed", Service: "delivery", Error: err})
		writeError(w, http.StatusInternalServerError, codeProcessing, err.Error())
	}
}

func validateTextRequest(req textMessageRequest) string {
	if msg := validateBase(req.UserID, req.ConversationID, req.PhoneNumber); msg != "" {
		return msg
	}
	if strings.TrimSpace(req.Text) == "" {
		return "text is required"
	}
	if len(req.Text) > maxTextLen {
		return "text exceeds " + strconv.Itoa(maxTextLen) + " characters"
	}
	return ""
}

func validateVoiceRequest(req voiceMessageRequest) string {
	if msg := validateBase(req.UserID, req.ConversationID, req.PhoneNumber); msg != "" {
		return msg
	}
	u, err := url.Parse(req.AudioURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "audioUrl must be a valid http(s) URL"
	}
	return ""
}

func validateBase(userID, conversationID, phoneNumber string) string {
	switch {
	case strings.TrimSpace(userID) == "":
		return "userId is required"
	case strings.TrimSpace(conversationID) == "":
		return "conversationId is required"
	case strings.TrimSpace(phoneNumber) == "":
		return "phoneNumber is required"
	}
	return ""
}

func buildResponse(userID, conversationID string, res ports.AssistantResult) AssistantResponse {
	return AssistantResponse{
		Status:           "success",
		Message:          res.Message,
		UserID:           userID,
		ConversationID:   conversationID,
		TranscribedText:  res.TranscribedText,
		AudioURL:         res.AudioURL,
		AudioDurationMS:  res.AudioDurationMS,
		Intent:           res.Meta.Intent,
		Flow:             res.Meta.Flow,
		TransactionData:  res.Meta.TransactionData,
		Timestamp:        time.Now().UTC(),
		ProcessingTimeMS: res.ProcessingTimeMS,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Status:    "error",
		ErrorCode: code,
		Message:   msg,
		Timestamp: time.Now().UTC(),
	})
}

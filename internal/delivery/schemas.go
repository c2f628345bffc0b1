package delivery

import (
	"time"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

// Wire formats for the public API. Field casing is part of the contract
// with the WhatsApp/webchat bridges, so the tags stay camelCase while
// the nested meta blocks keep their snake_case keys.

type textMessageRequest struct {
	UserID         string `json:"userId"`
	ConversationID string `json:"conversationId"`
	PhoneNumber    string `json:"phoneNumber"`
	Text           string `json:"text"`
}

type voiceMessageRequest struct {
	UserID         string `json:"userId"`
	ConversationID string `json:"conversationId"`
	PhoneNumber    string `json:"phoneNumber"`
	AudioURL       string `json:"audioUrl"`
}

type AssistantResponse struct {
	Status           string              `json:"status"`
	Message          string              `json:"message"`
	UserID           string              `json:"userId"`
	ConversationID   string              `json:"conversationId"`
	TranscribedText  string              `json:"transcribedText,omitempty"`
	AudioURL         string              `json:"audioUrl,omitempty"`
	AudioDurationMS  int                 `json:"audioDurationMs,omitempty"`
	Intent           *ports.IntentResult `json:"intent,omitempty"`
	Flow             ports.FlowMeta      `json:"flow"`
	TransactionData  map[string]any      `json:"transactionData,omitempty"`
	Timestamp        time.Time           `json:"timestamp"`
	ProcessingTimeMS int64               `json:"processingTimeMs"`
}

type ErrorResponse struct {
	Status    string         `json:"status"`
	ErrorCode string         `json:"errorCode"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
	Timestamp time.Time         `json:"timestamp"`
}

// Error codes the bridges branch on.
const (
	codeValidation    = "VALIDATION_ERROR"
	codeAudioDownload = "AUDIO_DOWNLOAD_FAILED"
	codeTranscription = "TRANSCRIPTION_FAILED"
	codeProcessing    = "PROCESSING_ERROR"
)

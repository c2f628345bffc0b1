package ports

import (
	"context"
	"errors"
)

// FlowMeta is the flow snapshot echoed back to clients.
type FlowMeta struct {
	FlowType   string `json:"flow_type"`
	Step       string `json:"step,omitempty"`
	IsComplete bool   `json:"is_complete"`
}

// Meta carries everything a turn produced besides the reply text.
type Meta struct {
	Intent          *IntentResult  `json:"intent,omitempty"`
	Flow            FlowMeta       `json:"flow"`
	TransactionData map[string]any `json:"transaction_data,omitempty"`
	// CompletedFlow names the flow whose completion ran this turn. By
	// then Flow already reads "none", so audit consumers need it here.
	// Not part of the response body.
	CompletedFlow string `json:"-"`
}

// TextTurn is one typed user message.
type TextTurn struct {
	UserID         string
	ConversationID string
	PhoneNumber    string
	Text           string
	// IncludeAudio asks for a synthesized reply on top of the text.
	IncludeAudio bool
}

// VoiceTurn is one recorded user message. The audio is fetched from
// AudioURL and transcribed before processing.
type VoiceTurn struct {
	UserID         string
	ConversationID string
	PhoneNumber    string
	AudioURL       string
}

// AssistantResult is the outcome of one processed turn.
type AssistantResult struct {
	Message          string
	TranscribedText  string
	AudioURL         string
	AudioDurationMS  int
	Meta             Meta
	ProcessingTimeMS int64
}

// Input-stage failures. Handlers map them to 400s; everything else a
// turn can fail with is a server-side problem.
var (
	ErrAudioDownload = errors.New("audio download failed")
	ErrTranscription = errors.New("transcription failed")
)

// ConversationManager routes one user turn through the active flow or
// the intent dispatch and always produces a reply.
type ConversationManager interface {
	Process(ctx context.Context, conversationID, userID, phoneNumber, text string) (string, Meta)
}

// SpeechService is the slice of the voice stack the assistant needs.
type SpeechService interface {
	Download(ctx context.Context, url string) ([]byte, error)
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
	Synthesize(ctx context.Context, text string) ([]byte, string, error)
}

type AssistantService interface {
	ProcessText(ctx context.Context, turn TextTurn) (AssistantResult, error)
	ProcessVoice(ctx context.Context, turn VoiceTurn) (AssistantResult, error)
}

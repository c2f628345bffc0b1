package domain

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"

	"github.com/bafoka-network/voice-assistant/internal/lang"
	"github.com/bafoka-network/voice-assistant/internal/ports"
	"github.com/bafoka-network/voice-assistant/internal/speech"
)

const persistTimeout = 10 * time.Second

type assistantService struct {
	manager  ports.ConversationManager
	voice    ports.SpeechService
	audio    ports.AudioStore
	turns    ports.TurnRepo
	audit    ports.AuditRepo
	notifier ports.Notificator
	log      *logger.ZapLogger
}

// NewAssistantService wires the turn pipeline. audio, turns, audit and
// notifier may be nil: the assistant still answers, it just skips spoken
// replies, history, the audit trail or the ops alerts.
func NewAssistantService(
	manager ports.ConversationManager,
	voice ports.SpeechService,
	audio ports.AudioStore,
	turns ports.TurnRepo,
	audit ports.AuditRepo,
	notifier ports.Notificator,
	log *logger.ZapLogger,
) ports.AssistantService {
	return &assistantService{
		manager:  manager,
		voice:    voice,
		audio:    audio,
		turns:    turns,
		audit:    audit,
		notifier: notifier,
		log:      log,
	}
}

func (s *assistantService) ProcessText(ctx context.Context, turn ports.TextTurn) (ports.AssistantResult, error) {
	started := time.Now()

	reply, meta := s.manager.Process(ctx, turn.ConversationID, turn.UserID, turn.PhoneNumber, turn.Text)
	if strings.TrimSpace(reply) == "" {
		s.warn("turn produced no reply text", nil)
		reply = genericFallback(lang.Detect(turn.Text))
	}

	res := ports.AssistantResult{Message: reply, Meta: meta}
	if turn.IncludeAudio {
		res.AudioURL, res.AudioDurationMS = s.attachAudio(ctx, turn.ConversationID, reply)
	}
	res.ProcessingTimeMS = time.Since(started).Milliseconds()

	s.persist(turn.ConversationID, turn.UserID, turn.Text, reply, meta)

	return res, nil
}

func (s *assistantService) ProcessVoice(ctx context.Context, turn ports.VoiceTurn) (ports.AssistantResult, error) {
	started := time.Now()

	audio, err := s.voice.Download(ctx, turn.AudioURL)
	if err != nil {
		return ports.AssistantResult{}, fmt.Errorf("%w: %v", ports.ErrAudioDownload, err)
	}

	transcript, err := s.voice.Transcribe(ctx, audio, sttFilename(turn.AudioURL))
	if err != nil {
		return ports.AssistantResult{}, fmt.Errorf("%w: %v", ports.ErrTranscription, err)
	}
	if strings.TrimSpace(transcript) == "" {
		return ports.AssistantResult{}, ports.ErrTranscription
	}

	reply, meta := s.manager.Process(ctx, turn.ConversationID, turn.UserID, turn.PhoneNumber, transcript)
	if strings.TrimSpace(reply) == "" {
		s.warn("turn produced no reply text", nil)
		reply = genericFallback(lang.Detect(transcript))
	}

	res := ports.AssistantResult{Message: reply, TranscribedText: transcript, Meta: meta}
	res.AudioURL, res.AudioDurationMS = s.attachAudio(ctx, turn.ConversationID, reply)
	res.ProcessingTimeMS = time.Since(started).Milliseconds()

	s.persist(turn.ConversationID, turn.UserID, transcript, reply, meta)

	return res, nil
}

// attachAudio renders the reply to speech and stores it. Synthesis and
// storage problems degrade to a text-only response.
func (s *assistantService) attachAudio(ctx context.Context, conversationID, reply string) (string, int) {
	if s.audio == nil {
		return "", 0
	}

	data, ext, err := s.voice.Synthesize(ctx, reply)
	if err != nil {
		if !errors.Is(err, speech.ErrDisabled) {
			s.warn("tts synthesis failed", err)
		}
		return "", 0
	}
	if len(data) == 0 {
		return "", 0
	}

	audioURL, err := s.audio.SaveResponse(ctx, conversationID, data, ext)
	if err != nil {
		s.warn("response audio save failed", err)
		return "", 0
	}

	return audioURL, speech.DurationMs(data)
}

// persist writes the exchange and the audit trail off the request path.
// A lost write never fails the turn that produced it.
func (s *assistantService) persist(conversationID, userID, userText, reply string, meta ports.Meta) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		s.saveExchange(ctx, conversationID, userID, userText, reply, meta)
		s.recordAudit(ctx, userID, meta)
	}()
}

func (s *assistantService) saveExchange(ctx context.Context, conversationID, userID, userText, reply string, meta ports.Meta) {
	if s.turns == nil {
		return
	}

	intent := ""
	if meta.Intent != nil {
		intent = string(meta.Intent.Intent)
	}

	userTurn := ports.Turn{
		ConversationID: conversationID,
		UserID:         userID,
		Role:           ports.RoleUser,
		Text:           userText,
		Intent:         intent,
	}
	botTurn := ports.Turn{
		ConversationID: conversationID,
		UserID:         userID,
		Role:           ports.RoleAssistant,
		Text:           reply,
	}

	if err := s.turns.SaveExchange(ctx, userTurn, botTurn); err != nil {
		s.fail(ctx, "history save failed", err)
	}
}

// completionEvents maps a finished flow to its audit event. Transaction
// flows are handled separately, dashboard views leave no trail.
var completionEvents = map[string]string{
	string(ports.FlowAccountCreation): ports.AuditAccountCreated,
	string(ports.FlowPasswordReset):   ports.AuditPasswordReset,
	string(ports.FlowPasswordChange):  ports.AuditPasswordChanged,
	string(ports.FlowWhatsappLink):    ports.AuditWhatsappLinked,
}

func (s *assistantService) recordAudit(ctx context.Context, userID string, meta ports.Meta) {
	if s.audit == nil {
		return
	}

	// A transaction flow that just started from a classified intent.
	if meta.Intent != nil && isTransactionFlow(meta.Flow.FlowType) && !meta.Flow.IsComplete {
		s.record(ctx, userID, ports.AuditTransactionInitiated, map[string]any{"flow": meta.Flow.FlowType})
	}

	if meta.CompletedFlow == "" || meta.TransactionData == nil {
		return
	}
	data := meta.TransactionData

	if isTransactionFlow(meta.CompletedFlow) {
		switch {
		case data["blocked"] == true:
			s.record(ctx, userID, ports.AuditTransactionBlocked, data)
			s.record(ctx, userID, ports.AuditFraudAlert, data)
		case data["error"] != nil:
			s.record(ctx, userID, ports.AuditTransactionFailed, data)
		default:
			s.record(ctx, userID, ports.AuditTransactionCompleted, data)
		}
		return
	}

	if event, ok := completionEvents[meta.CompletedFlow]; ok && data["error"] == nil {
		s.record(ctx, userID, event, data)
	}
}

func (s *assistantService) record(ctx context.Context, userID, event string, details map[string]any) {
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("{}")
	}

	if _, err := s.audit.Record(ctx, ports.AuditEvent{
		UserID:    userID,
		EventType: event,
		Details:   string(payload),
	}); err != nil {
		s.fail(ctx, "audit record failed", err)
	}
}

func isTransactionFlow(label string) bool {
	switch label {
	case string(ports.FlowTransfer), string(ports.FlowWithdrawal), string(ports.FlowTopup):
		return true
	}
	return false
}

// sttFilename turns the source URL into the filename hint transcription
// providers key the audio format on.
func sttFilename(audioURL string) string {
	if u, err := url.Parse(audioURL); err == nil {
		if ext := path.Ext(u.Path); ext != "" {
			return "input" + ext
		}
	}
	return "input.ogg"
}

// genericFallback is the canned help blurb for turns where the engine
// produced no text.
func genericFallback(language string) string {
	if language == "fr" {
		return "Je suis là pour vous aider avec votre compte BAFOKA : " +
			"création de compte, consultation de compte, solde, retraits et dépôts. " +
			"Que souhaitez-vous faire ?"
	}
	return "I'm here to help with your BAFOKA account: " +
		"account creation, viewing your account, balance, withdrawals and deposits. " +
		"What would you like to do?"
}

func (s *assistantService) warn(msg string, err error) {
	s.log.Log(logger.LogEntry{
		Level:   "warn",
		Message: msg,
		Service: "assistant",
		Error:   err,
	})
}

// fail is warn plus an ops alert, for errors that lose data.
func (s *assistantService) fail(ctx context.Context, msg string, err error) {
	s.warn(msg, err)
	if s.notifier != nil {
		_ = s.notifier.Notify(ctx, "assistant", err, msg)
	}
}

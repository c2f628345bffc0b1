package conversation

import (
	"context"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

// whatsappFlow links a WhatsApp number to the account, defaulting to the
// caller's own number when they say "same".
type whatsappFlow struct {
	flowBase
}

var (
	sameNumberWords = map[string]struct{}{
		"yes": {}, "y": {}, "ok": {}, "same": {},
		"oui": {}, "o": {}, "même": {}, "meme": {}, "pareil": {},
	}
	diffNumberWords = map[string]struct{}{
		"different": {}, "diff": {}, "other": {}, "no": {}, "n": {},
		"différent": {}, "autre": {}, "non": {},
	}
	cancelWords = map[string]struct{}{
		"cancel": {}, "stop": {}, "annuler": {}, "annule": {},
	}
)

func (f *whatsappFlow) Start(ctx context.Context) string {
	if !f.ensureAccount(ctx) {
		return f.prompt("no_account")
	}

	f.state.StartFlow(ports.FlowWhatsappLink, stepAskWhatsappChoice)
	return f.promptVars("start", map[string]string{
		"phone": maskPhone(f.state.PhoneNumber),
	})
}

func (f *whatsappFlow) Process(ctx context.Context, input string) (string, bool) {
	switch f.state.FlowStep {
	case stepAskWhatsappChoice:
		return f.processChoice(input)
	case stepAskWhatsappNumber:
		return f.processNumber(input)
	case stepConfirm:
		return f.processConfirmation(input)
	}
	return "", false
}

func (f *whatsappFlow) processChoice(input string) (string, bool) {
	lowered := lowerTrim(input)

	if _, ok := cancelWords[lowered]; ok {
		f.state.ResetFlow()
		return f.prompt("cancelled"), true
	}
	if _, ok := sameNumberWords[lowered]; ok {
		return f.acceptNumber(f.state.PhoneNumber), false
	}
	if _, ok := diffNumberWords[lowered]; ok {
		f.state.NextStep(stepAskWhatsappNumber)
		return f.prompt("ask_whatsapp_number"), false
	}

	// A raw phone number counts as an answer too.
	if digits := digitsOnly(input); len(digits) >= 8 {
		return f.acceptNumber(digits), false
	}

	if f.state.IncrementAttempts() {
		return f.abort("max_attempts")
	}
	return f.promptVars("start", map[string]string{
		"phone": maskPhone(f.state.PhoneNumber),
	}), false
}

func (f *whatsappFlow) processNumber(input string) (string, bool) {
	digits := digitsOnly(input)
	if len(digits) < 8 {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("invalid_number"), false
	}

	return f.acceptNumber(digits), false
}

func (f *whatsappFlow) acceptNumber(number string) string {
	f.state.AddData("whatsapp_number", number)
	f.state.NextStep(stepConfirm)
	return f.promptVars("confirm", map[string]string{
		"whatsapp": maskPhone(number),
	})
}

func (f *whatsappFlow) processConfirmation(input string) (string, bool) {
	if isYesWord(input) {
		f.state.NextStep(stepComplete)
		return "", true
	}
	if isNoWord(input) {
		f.state.ResetFlow()
		return f.prompt("cancelled"), true
	}

	if f.state.IncrementAttempts() {
		return f.abort("max_attempts")
	}
	return f.prompt("confirm_retry"), false
}

func (f *whatsappFlow) Complete(ctx context.Context) (string, map[string]any) {
	whatsappNumber := f.state.CollectedData["whatsapp_number"]
	f.state.ResetFlow()

	result, err := f.backend.LinkWhatsApp(ctx, f.state.PhoneNumber, whatsappNumber)
	if err != nil {
		f.warn("whatsapp linking failed", err)
		return f.prompt("error"), map[string]any{"error": err.Error()}
	}
	if !result.Success {
		return f.prompt("error"), map[string]any{
			"success": false,
			"error":   result.Message,
		}
	}

	return f.prompt("success"), map[string]any{
		"success":         true,
		"linked":          result.Linked,
		"whatsapp_number": whatsappNumber,
		"message":         result.Message,
	}
}

package conversation

import (
	"context"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

// passwordResetFlow asks for a single confirmation before requesting a
// reset link for the caller's own number.
type passwordResetFlow struct {
	flowBase
}

func (f *passwordResetFlow) Start(ctx context.Context) string {
	if !f.ensureAccount(ctx) {
		return f.prompt("no_account")
	}

	f.state.StartFlow(ports.FlowPasswordReset, stepConfirm)
	return f.promptVars("start", map[string]string{
		"phone": maskPhone(f.state.PhoneNumber),
	})
}

func (f *passwordResetFlow) Process(ctx context.Context, input string) (string, bool) {
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

func (f *passwordResetFlow) Complete(ctx context.Context) (string, map[string]any) {
	phone := f.state.PhoneNumber
	f.state.ResetFlow()

	result, err := f.backend.ResetPassword(ctx, phone)
	if err != nil {
		f.warn("password reset failed", err)
		return f.prompt("error"), map[string]any{"error": err.Error()}
	}
	if !result.Success {
		return f.prompt("error"), map[string]any{
			"success": false,
			"error":   result.Message,
		}
	}

	return f.prompt("success"), map[string]any{
		"success":      true,
		"phone_number": phone,
		"message":      result.Message,
	}
}

package conversation

import (
	"context"
	"strings"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

// passwordChangeFlow collects the old and new password and re-asks the new
// one before calling the backend.
type passwordChangeFlow struct {
	flowBase
}

func (f *passwordChangeFlow) Start(ctx context.Context) string {
	if !f.ensureAccount(ctx) {
		return f.prompt("no_account")
	}

	f.state.StartFlow(ports.FlowPasswordChange, stepAskOldPassword)
	return f.prompt("start")
}

func (f *passwordChangeFlow) Process(ctx context.Context, input string) (string, bool) {
	switch f.state.FlowStep {
	case stepAskOldPassword:
		return f.processOldPassword(input)
	case stepAskNewPassword:
		return f.processNewPassword(input)
	case stepConfirmPassword:
		return f.processConfirmPassword(input)
	}
	return "", false
}

func (f *passwordChangeFlow) processOldPassword(input string) (string, bool) {
	password := strings.TrimSpace(input)
	if len(password) < 4 {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("invalid_password"), false
	}

	f.state.AddData("old_password", password)
	f.state.NextStep(stepAskNewPassword)
	return f.prompt("ask_new_password"), false
}

func (f *passwordChangeFlow) processNewPassword(input string) (string, bool) {
	password := strings.TrimSpace(input)
	if len(password) < 6 {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("password_too_short"), false
	}

	f.state.AddData("new_password", password)
	f.state.NextStep(stepConfirmPassword)
	return f.prompt("ask_confirm_password"), false
}

func (f *passwordChangeFlow) processConfirmPassword(input string) (string, bool) {
	if strings.TrimSpace(input) == f.state.CollectedData["new_password"] {
		f.state.NextStep(stepComplete)
		return "", true
	}

	if f.state.IncrementAttempts() {
		return f.abort("max_attempts")
	}
	f.state.DropData("new_password")
	f.state.NextStep(stepAskNewPassword)
	return f.prompt("password_mismatch"), false
}

func (f *passwordChangeFlow) Complete(ctx context.Context) (string, map[string]any) {
	oldPassword := f.state.CollectedData["old_password"]
	newPassword := f.state.CollectedData["new_password"]
	f.state.ResetFlow()

	result, err := f.backend.ChangePassword(ctx, f.state.PhoneNumber, oldPassword, newPassword)
	if err != nil {
		f.warn("password change failed", err)
		return f.prompt("error"), map[string]any{"error": err.Error()}
	}
	if !result.Success {
		return f.prompt("error"), map[string]any{
			"success": false,
			"error":   result.Message,
		}
	}

	return f.prompt("success"), map[string]any{
		"success": true,
		"message": result.Message,
	}
}

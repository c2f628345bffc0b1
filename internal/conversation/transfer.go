package conversation

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

// transferFlow sends tokens to another member: receiver, amount and PIN
// are collected, the transfer is risk-scored, then executed.
type transferFlow struct {
	flowBase
}

func (f *transferFlow) Start(ctx context.Context) string {
	if !f.ensureAccount(ctx) {
		return f.general("no_account")
	}

	f.state.StartFlow(ports.FlowTransfer, stepAskReceiver)
	return f.prompt("start")
}

func (f *transferFlow) Process(ctx context.Context, input string) (string, bool) {
	switch f.state.FlowStep {
	case stepAskReceiver:
		return f.processReceiver(input)
	case stepAskAmount:
		return f.processAmount(input)
	case stepAskPin:
		return f.processPin(input)
	case stepConfirm:
		return f.processConfirmation(input)
	}
	return "", false
}

func (f *transferFlow) processReceiver(input string) (string, bool) {
	receiver := digitsOnly(input)
	if len(receiver) < 8 {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("ask_receiver_retry"), false
	}

	f.state.AddData("receiver", receiver)
	f.state.NextStep(stepAskAmount)
	return f.prompt("ask_amount"), false
}

var transferDigits = regexp.MustCompile(`\d+`)

// parseTransferAmount reads "10 000", "10,000", "10.000" and "10000 XAF"
// as the same whole amount.
func parseTransferAmount(input string) (int, bool) {
	cleaned := strings.ToLower(input)
	for _, noise := range []string{"xof", "xaf", "fcfa", "francs", " ", ",", "."} {
		cleaned = strings.ReplaceAll(cleaned, noise, "")
	}

	m := transferDigits.FindString(cleaned)
	if m == "" {
		return 0, false
	}
	amount, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return amount, true
}

func (f *transferFlow) processAmount(input string) (string, bool) {
	amount, ok := parseTransferAmount(input)
	if !ok {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("ask_amount_retry"), false
	}

	if amount <= 0 {
		return f.prompt("amount_positive"), false
	}
	if f.state.AccountBalance > 0 && float64(amount) > f.state.AccountBalance {
		return f.promptVars("insufficient_funds", map[string]string{
			"balance":  formatAmount(f.state.AccountBalance),
			"currency": f.cfg.Currency,
		}), false
	}

	f.state.AddData("amount", strconv.Itoa(amount))
	f.state.NextStep(stepAskPin)
	return f.prompt("ask_pin"), false
}

func (f *transferFlow) processPin(input string) (string, bool) {
	pin := strings.ReplaceAll(strings.TrimSpace(input), " ", "")
	if !isPin(pin) {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("ask_pin_retry"), false
	}

	f.state.AddData("pin", pin)
	f.state.NextStep(stepConfirm)
	return f.promptVars("confirm", f.confirmVars()), false
}

func isPin(s string) bool {
	if len(s) < 4 || len(s) > 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (f *transferFlow) processConfirmation(input string) (string, bool) {
	if isYesWord(input) {
		f.state.NextStep(stepComplete)
		return "", true
	}
	if isNoWord(input) {
		f.state.DropData("amount")
		f.state.DropData("pin")
		f.state.NextStep(stepAskAmount)
		return f.prompt("ask_again"), false
	}

	return f.promptVars("confirm_retry", f.confirmVars()), false
}

func (f *transferFlow) confirmVars() map[string]string {
	return map[string]string{
		"amount":   f.state.CollectedData["amount"],
		"currency": f.cfg.Currency,
		"receiver": f.state.CollectedData["receiver"],
	}
}

func (f *transferFlow) Complete(ctx context.Context) (string, map[string]any) {
	receiver := f.state.CollectedData["receiver"]
	amountStr := f.state.CollectedData["amount"]
	pin := f.state.CollectedData["pin"]

	if reply, data, blocked := f.riskCheck(ctx, receiver, amountStr); blocked {
		return reply, data
	}

	result, err := f.backend.Transfer(ctx, ports.TransferRequest{
		PhoneNumber:         f.state.PhoneNumber,
		ReceiverPhoneNumber: receiver,
		PIN:                 pin,
		Amount:              amountStr,
	})
	if err != nil {
		f.warn("transfer failed", err)
		f.state.ResetFlow()
		return f.prompt("error"), map[string]any{"error": err.Error()}
	}

	if bal, err := f.backend.WalletBalance(ctx, f.state.PhoneNumber); err == nil {
		f.state.AccountBalance = bal.Balance
	}
	f.state.ResetFlow()

	reference := result.Reference
	if reference == "" {
		reference = "N/A"
	}

	return f.promptVars("success", map[string]string{"reference": reference}), map[string]any{
		"status":    result.Status,
		"reference": reference,
		"message":   result.Message,
	}
}

// riskCheck scores the transfer and refuses it above the configured
// threshold, leaving an alert for the operators.
func (f *transferFlow) riskCheck(ctx context.Context, receiver, amountStr string) (string, map[string]any, bool) {
	if f.risk == nil {
		return "", nil, false
	}

	amount, _ := strconv.ParseFloat(amountStr, 64)
	score, factors := f.risk.AssessRisk(ctx, f.state.UserID, amount, receiver)
	if score < f.cfg.FraudBlockThreshold {
		return "", nil, false
	}

	f.risk.ReportSuspiciousActivity(ctx, f.state.UserID, "transfer_blocked", map[string]any{
		"amount":     amount,
		"receiver":   receiver,
		"risk_score": score,
		"factors":    factors,
	})

	f.state.ResetFlow()
	return f.prompt("blocked"), map[string]any{
		"blocked":    true,
		"risk_score": score,
	}, true
}

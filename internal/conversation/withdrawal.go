package conversation

import (
	"context"
	"strconv"

	"github.com/bafoka-network/voice-assistant/internal/extract"
	"github.com/bafoka-network/voice-assistant/internal/ports"
)

type withdrawalFlow struct {
	flowBase
}

func (f *withdrawalFlow) Start(ctx context.Context) string {
	if !f.ensureAccount(ctx) {
		return f.general("no_account")
	}

	f.state.StartFlow(ports.FlowWithdrawal, stepAskAmount)
	return f.prompt("start")
}

func (f *withdrawalFlow) Process(ctx context.Context, input string) (string, bool) {
	switch f.state.FlowStep {
	case stepAskAmount:
		return f.processAmount(input)
	case stepConfirm:
		return f.processConfirmation(input)
	}
	return "", false
}

func (f *withdrawalFlow) processAmount(input string) (string, bool) {
	amount, ok := extract.Amount(input)
	if !ok {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("invalid_amount"), false
	}

	if amount < f.cfg.WithdrawalMin || amount > f.cfg.WithdrawalMax {
		return f.prompt("invalid_amount"), false
	}
	if f.state.AccountBalance > 0 && amount > f.state.AccountBalance {
		return f.promptVars("insufficient_funds", map[string]string{
			"balance":  formatAmount(f.state.AccountBalance),
			"currency": f.cfg.Currency,
		}), false
	}

	f.state.AddData("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	f.state.NextStep(stepConfirm)
	return f.promptVars("confirm", map[string]string{
		"amount":   formatAmount(amount),
		"currency": f.cfg.Currency,
	}), false
}

func (f *withdrawalFlow) processConfirmation(input string) (string, bool) {
	confirmed, recognized := extract.IsConfirmation(input)
	if recognized && confirmed {
		f.state.NextStep(stepComplete)
		return "", true
	}
	if recognized {
		f.state.DropData("amount")
		f.state.NextStep(stepAskAmount)
		return f.prompt("ask_again"), false
	}

	if f.state.IncrementAttempts() {
		return f.abort("max_attempts")
	}
	return f.prompt("confirm_prompt"), false
}

func (f *withdrawalFlow) Complete(ctx context.Context) (string, map[string]any) {
	amount, _ := strconv.ParseFloat(f.state.CollectedData["amount"], 64)

	tx, err := f.backend.Withdraw(ctx, f.state.AccountID, amount, "Withdrawal via voice assistant")
	if err != nil {
		f.warn("withdrawal failed", err)
		f.state.ResetFlow()
		return f.prompt("error"), map[string]any{"error": err.Error()}
	}

	if bal, err := f.backend.WalletBalance(ctx, f.state.PhoneNumber); err == nil {
		f.state.AccountBalance = bal.Balance
	}
	f.state.ResetFlow()

	return f.promptVars("success", map[string]string{
		"amount":   formatAmount(amount),
		"currency": f.cfg.Currency,
	}), map[string]any{
		"transaction_id": tx.ID,
		"amount":         amount,
		"new_balance":    f.state.AccountBalance,
	}
}

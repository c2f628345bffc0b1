package conversation

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

const (
	actionTransactions  = "view_transactions"
	actionAmount        = "view_transaction_amount"
	actionRegistrations = "view_registrations"
	actionHolders       = "view_holders"
)

// Keyword categories are checked in order, so "total transactions" lands
// on the transaction list before the amount summary gets a chance.
var dashboardActions = []struct {
	action   string
	keywords []string
}{
	{actionTransactions, []string{
		"transactions", "transaction", "history", "my transactions",
		"show transactions", "list transactions", "view transactions",
		"historique", "mes transactions", "voir transactions",
		"afficher transactions", "liste transactions",
		"1",
	}},
	{actionAmount, []string{
		"amount", "total", "sum", "total amount", "transaction amount",
		"montant", "montant total", "somme", "total des transactions",
		"2",
	}},
	{actionRegistrations, []string{
		"registrations", "registration", "stats", "statistics",
		"signups", "sign ups", "signup stats",
		"inscriptions", "inscription", "statistiques", "stats inscription",
		"statistiques d'inscription",
		"3",
	}},
	{actionHolders, []string{
		"holders", "holder", "accounts", "account holders",
		"users", "members", "list holders",
		"détenteurs", "detenteurs", "titulaires", "comptes",
		"liste des comptes", "titulaires de comptes",
		"4",
	}},
}

func extractDashboardAction(text string) (string, bool) {
	lowered := lowerTrim(text)
	for _, category := range dashboardActions {
		for _, keyword := range category.keywords {
			if strings.Contains(lowered, keyword) {
				return category.action, true
			}
		}
	}
	return "", false
}

// dashboardFlow answers operator-style queries: transaction lists, totals,
// registration stats and account holders.
type dashboardFlow struct {
	flowBase
}

func (f *dashboardFlow) Start(ctx context.Context) string {
	if !f.ensureAccount(ctx) {
		return f.general("no_account")
	}

	f.state.StartFlow(ports.FlowDashboard, stepAskDashboardAction)
	return f.prompt("start")
}

func (f *dashboardFlow) Process(ctx context.Context, input string) (string, bool) {
	if f.state.FlowStep != stepAskDashboardAction {
		return "", false
	}

	action, ok := extractDashboardAction(input)
	if !ok {
		if f.state.IncrementAttempts() {
			return f.abort("max_attempts")
		}
		return f.prompt("ask_action_retry"), false
	}

	f.state.AddData("dashboard_action", action)
	f.state.NextStep(stepComplete)
	return "", true
}

func (f *dashboardFlow) Complete(ctx context.Context) (string, map[string]any) {
	action := f.state.CollectedData["dashboard_action"]
	f.state.ResetFlow()

	var (
		reply string
		data  map[string]any
		err   error
	)
	switch action {
	case actionTransactions:
		reply, data, err = f.fetchTransactions(ctx)
	case actionAmount:
		reply, data, err = f.fetchAmount(ctx)
	case actionRegistrations:
		reply, data, err = f.fetchRegistrations(ctx)
	case actionHolders:
		reply, data, err = f.fetchHolders(ctx)
	default:
		return f.prompt("error"), nil
	}
	if err != nil {
		f.warn("dashboard query failed", err)
		return f.prompt("error"), map[string]any{"error": err.Error()}
	}

	return reply, data
}

func (f *dashboardFlow) fetchTransactions(ctx context.Context) (string, map[string]any, error) {
	transactions, err := f.backend.DashboardTransactions(ctx, f.state.PhoneNumber, 10)
	if err != nil {
		return "", nil, err
	}
	if len(transactions) == 0 {
		return f.prompt("no_transactions"), map[string]any{"transactions": []map[string]any{}}, nil
	}

	lines := []string{f.prompt("transactions_header"), ""}
	items := make([]map[string]any, 0, len(transactions))
	for i, tx := range transactions {
		if i < 10 {
			lines = append(lines, f.transactionLine(i+1, tx))
		}

		var createdAt any
		if !tx.CreatedAt.IsZero() {
			createdAt = tx.CreatedAt.Format(time.RFC3339)
		}
		items = append(items, map[string]any{
			"id":         tx.ID,
			"type":       tx.Type,
			"amount":     tx.Amount,
			"currency":   tx.Currency,
			"status":     tx.Status,
			"reference":  tx.Reference,
			"created_at": createdAt,
		})
	}

	return strings.Join(lines, "\n"), map[string]any{"transactions": items}, nil
}

func (f *dashboardFlow) transactionLine(index int, tx ports.Transaction) string {
	line := fmt.Sprintf("%d. %s **%s** - %s %s",
		index, transactionEmoji(tx.Type), tx.Type, formatGrouped(tx.Amount), tx.Currency)
	if !tx.CreatedAt.IsZero() {
		line += fmt.Sprintf(" (%s)", formatDate(tx.CreatedAt))
	}
	if tx.Reference != "" {
		line += fmt.Sprintf("\n   Ref: `%s`", tx.Reference)
	}
	return line
}

func (f *dashboardFlow) fetchAmount(ctx context.Context) (string, map[string]any, error) {
	summary, err := f.backend.TransactionAmount(ctx)
	if err != nil {
		return "", nil, err
	}

	lines := []string{
		f.prompt("amount_header"),
		"",
		f.promptVars("total_amount", map[string]string{
			"amount":   formatGrouped(summary.TotalAmount),
			"currency": summary.Currency,
		}),
	}
	if summary.Count > 0 {
		lines = append(lines, f.promptVars("total_count", map[string]string{
			"count": formatGroupedInt(summary.Count),
		}))
	}
	if summary.Period != "" {
		lines = append(lines, f.label("Period", "Période")+": "+summary.Period)
	}

	return strings.Join(lines, "\n"), map[string]any{
		"total_amount": summary.TotalAmount,
		"currency":     summary.Currency,
		"count":        summary.Count,
		"period":       summary.Period,
	}, nil
}

func (f *dashboardFlow) fetchRegistrations(ctx context.Context) (string, map[string]any, error) {
	stats, err := f.backend.RegistrationStats(ctx)
	if err != nil {
		return "", nil, err
	}

	lines := []string{
		f.prompt("registrations_header"),
		"",
		f.promptVars("total_registrations", map[string]string{
			"count": formatGroupedInt(stats.Total),
		}),
	}
	if stats.Period != "" {
		lines = append(lines, f.label("Period", "Période")+": "+stats.Period)
	}
	if len(stats.Breakdown) > 0 {
		lines = append(lines, "", f.prompt("breakdown_header"))
		keys := make([]string, 0, len(stats.Breakdown))
		for key := range stats.Breakdown {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			lines = append(lines, fmt.Sprintf("  • %s: %s", key, formatGroupedInt(stats.Breakdown[key])))
		}
	}

	return strings.Join(lines, "\n"), map[string]any{
		"total_registrations": stats.Total,
		"period":              stats.Period,
		"breakdown":           stats.Breakdown,
	}, nil
}

func (f *dashboardFlow) fetchHolders(ctx context.Context) (string, map[string]any, error) {
	holders, err := f.backend.AccountHolders(ctx, 10, 1)
	if err != nil {
		return "", nil, err
	}
	if len(holders) == 0 {
		return f.prompt("no_holders"), map[string]any{"holders": []map[string]any{}}, nil
	}

	lines := []string{f.prompt("holders_header"), ""}
	items := make([]map[string]any, 0, len(holders))
	for i, holder := range holders {
		if i < 10 {
			lines = append(lines, f.holderLine(i+1, holder))
		}
		items = append(items, map[string]any{
			"id":              holder.ID,
			"full_name":       holder.FullName,
			"phone_number":    holder.PhoneNumber,
			"balance":         holder.Balance,
			"currency":        holder.Currency,
			"status":          holder.Status,
			"groupement_name": holder.GroupementName,
		})
	}

	return strings.Join(lines, "\n"), map[string]any{"holders": items}, nil
}

func (f *dashboardFlow) holderLine(index int, holder ports.AccountHolder) string {
	line := fmt.Sprintf("%d. **%s**", index, holder.FullName)
	line += "\n   📱 " + holder.PhoneNumber
	line += "\n   💵 " + f.promptVars("holder_balance", map[string]string{
		"balance":  formatGrouped(holder.Balance),
		"currency": holder.Currency,
	})
	if holder.GroupementName != "" {
		line += "\n   🏘️ " + f.promptVars("holder_group", map[string]string{
			"group": holder.GroupementName,
		})
	}
	line += "\n   " + f.label("Status", "Statut") + ": " + holder.Status
	return line
}

func (f *dashboardFlow) label(en, fr string) string {
	if f.state.Lang == "fr" {
		return fr
	}
	return en
}

package conversation

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/bafoka-network/voice-assistant/internal/config"
	"github.com/bafoka-network/voice-assistant/internal/lang"
	"github.com/bafoka-network/voice-assistant/internal/ports"
	"github.com/bafoka-network/voice-assistant/internal/prompts"
)

// Manager routes each user turn: keeps the active flow moving, or
// classifies the intent and dispatches to a flow starter, a direct
// handler, or the LLM fallback.
type Manager struct {
	cfg        config.Config
	store      ports.ConversationStore
	backend    ports.BafokaClient
	texts      prompts.Service
	classifier ports.IntentClassifier
	risk       ports.RiskAssessor
	llm        Replier
	log        *logger.ZapLogger
}

// NewManager wires the turn router. risk and llm may be nil: transfers
// then run unscored and general questions get the canned help text.
func NewManager(
	cfg config.Config,
	store ports.ConversationStore,
	backend ports.BafokaClient,
	texts prompts.Service,
	classifier ports.IntentClassifier,
	risk ports.RiskAssessor,
	llm Replier,
	log *logger.ZapLogger,
) *Manager {
	return &Manager{
		cfg:        cfg,
		store:      store,
		backend:    backend,
		texts:      texts,
		classifier: classifier,
		risk:       risk,
		llm:        llm,
		log:        log,
	}
}

// Process handles one user turn and always produces a reply; backend and
// store failures degrade to apologetic prompts instead of errors.
func (m *Manager) Process(ctx context.Context, conversationID, userID, phoneNumber, text string) (string, ports.Meta) {
	state := m.loadState(ctx, conversationID, userID, phoneNumber)

	// Sticky language switch: one French message flips the conversation
	// to French, and bare numbers or names never flip it back.
	if lang.Detect(text) == "fr" {
		state.Lang = "fr"
	}

	wasInFlow := state.InFlow()

	var (
		reply string
		meta  ports.Meta
	)

	switch {
	case wasInFlow && containsCancel(text):
		state.ResetFlow()
		reply = m.texts.General("cancelled", state.Lang)

	case wasInFlow:
		f := m.flowFor(state)
		if f == nil {
			state.ResetFlow()
			reply = m.texts.General("something_wrong", state.Lang)
			break
		}
		active := state.FlowType
		var completed bool
		reply, meta.TransactionData, completed = m.runFlow(ctx, f, state, text)
		if completed {
			meta.CompletedFlow = string(active)
		}

	default:
		res := m.classifier.Classify(text)
		meta.Intent = &res
		reply = m.handleIntent(ctx, state, res.Intent, text)
	}

	if err := m.store.Save(ctx, state); err != nil {
		m.warn("conversation save failed", err)
	}

	meta.Flow = ports.FlowMeta{
		FlowType:   flowLabel(state.FlowType),
		Step:       state.FlowStep,
		IsComplete: wasInFlow && !state.InFlow(),
	}

	return reply, meta
}

func (m *Manager) loadState(ctx context.Context, conversationID, userID, phoneNumber string) *ports.ConversationState {
	state, err := m.store.Get(ctx, conversationID)
	if err != nil {
		m.warn("conversation load failed", err)
	}
	if state != nil {
		return state
	}

	state = ports.NewConversationState(conversationID, userID, phoneNumber)

	if acc, err := m.backend.MyAccount(ctx, phoneNumber); err != nil {
		m.warn("account preload failed", err)
	} else if acc != nil {
		state.AccountID = acc.ID
		state.AccountBalance = acc.Balance
	}

	if err := m.store.Save(ctx, state); err != nil {
		m.warn("conversation save failed", err)
	}
	return state
}

// runFlow advances the active flow one turn. Completion is signaled by
// done with the flow type still on the state; an aborted flow resets the
// state itself and its reply passes through untouched. The bool reports
// whether Complete actually ran.
func (m *Manager) runFlow(ctx context.Context, f flow, state *ports.ConversationState, text string) (string, map[string]any, bool) {
	reply, done := f.Process(ctx, text)
	if done && state.InFlow() {
		reply, data := f.Complete(ctx)
		return reply, data, true
	}
	return reply, nil, false
}

func (m *Manager) flowFor(state *ports.ConversationState) flow {
	switch state.FlowType {
	case ports.FlowAccountCreation:
		return &accountFlow{m.newBase("account_creation", state)}
	case ports.FlowWithdrawal:
		return &withdrawalFlow{m.newBase("withdrawal", state)}
	case ports.FlowTopup:
		return &topupFlow{m.newBase("topup", state)}
	case ports.FlowTransfer:
		return &transferFlow{m.newBase("transfer", state)}
	case ports.FlowPasswordReset:
		return &passwordResetFlow{m.newBase("password_reset", state)}
	case ports.FlowPasswordChange:
		return &passwordChangeFlow{m.newBase("password_change", state)}
	case ports.FlowWhatsappLink:
		return &whatsappFlow{m.newBase("whatsapp_link", state)}
	case ports.FlowDashboard:
		return &dashboardFlow{m.newBase("dashboard", state)}
	}
	return nil
}

func (m *Manager) newBase(name string, state *ports.ConversationState) flowBase {
	return flowBase{
		name:    name,
		cfg:     m.cfg,
		backend: m.backend,
		texts:   m.texts,
		risk:    m.risk,
		log:     m.log,
		state:   state,
	}
}

func (m *Manager) handleIntent(ctx context.Context, state *ports.ConversationState, in ports.Intent, text string) string {
	switch in {
	case ports.IntentAccountCreation:
		return (&accountFlow{m.newBase("account_creation", state)}).Start(ctx)
	case ports.IntentWithdrawal:
		return (&withdrawalFlow{m.newBase("withdrawal", state)}).Start(ctx)
	case ports.IntentTopup:
		return (&topupFlow{m.newBase("topup", state)}).Start(ctx)
	case ports.IntentTransfer:
		return (&transferFlow{m.newBase("transfer", state)}).Start(ctx)
	case ports.IntentPasswordReset:
		return (&passwordResetFlow{m.newBase("password_reset", state)}).Start(ctx)
	case ports.IntentPasswordChange:
		return (&passwordChangeFlow{m.newBase("password_change", state)}).Start(ctx)
	case ports.IntentWhatsappLink:
		return (&whatsappFlow{m.newBase("whatsapp_link", state)}).Start(ctx)
	case ports.IntentDashboard:
		return (&dashboardFlow{m.newBase("dashboard", state)}).Start(ctx)

	case ports.IntentBalanceInquiry:
		return m.balanceInquiry(ctx, state)
	case ports.IntentTransactionHistory:
		return m.transactionHistory(ctx, state)
	case ports.IntentViewAccount:
		return m.viewAccount(ctx, state)

	case ports.IntentGreeting:
		return m.texts.General("welcome", state.Lang)
	case ports.IntentGoodbye:
		return m.texts.General("goodbye", state.Lang)
	case ports.IntentOffTopic:
		return m.texts.General("off_topic", state.Lang)
	case ports.IntentConfirmation, ports.IntentDenial:
		// A bare yes/no outside a flow has nothing to confirm.
		return m.texts.General("not_understood", state.Lang)

	case ports.IntentGeneralSupport:
		return m.generalSupport(ctx, state, text)
	}

	return m.texts.General("help", state.Lang)
}

func (m *Manager) generalSupport(ctx context.Context, state *ports.ConversationState, text string) string {
	if m.llm != nil {
		reply, err := m.llm.GeneralReply(ctx, state.ConversationID, text)
		if err != nil {
			m.warn("llm fallback failed", err)
		} else if strings.TrimSpace(reply) != "" {
			return reply
		}
	}
	return m.texts.General("help", state.Lang)
}

func (m *Manager) balanceInquiry(ctx context.Context, state *ports.ConversationState) string {
	if state.AccountID == "" && !m.preloadAccount(ctx, state) {
		return m.texts.General("no_account", state.Lang)
	}

	bal, err := m.backend.WalletBalance(ctx, state.PhoneNumber)
	if err != nil {
		m.warn("balance fetch failed", err)
		return m.texts.General("balance_error", state.Lang)
	}
	state.AccountBalance = bal.Balance

	return prompts.Render(m.texts.General("balance", state.Lang), map[string]string{
		"balance":  formatAmount(bal.Balance),
		"currency": m.cfg.Currency,
	})
}

func (m *Manager) transactionHistory(ctx context.Context, state *ports.ConversationState) string {
	if state.AccountID == "" && !m.preloadAccount(ctx, state) {
		return m.texts.General("no_account", state.Lang)
	}

	txs, err := m.backend.RecentTransactions(ctx, state.AccountID, 5)
	if err != nil {
		m.warn("transaction history fetch failed", err)
		return m.texts.General("history_error", state.Lang)
	}
	if len(txs) == 0 {
		return m.texts.General("no_transactions_yet", state.Lang)
	}

	lines := []string{m.texts.General("recent_transactions", state.Lang)}
	for _, t := range txs {
		lines = append(lines, fmt.Sprintf("• %s: %s %s (%s)", t.Type, formatAmount(t.Amount), m.cfg.Currency, t.Status))
	}
	return strings.Join(lines, "\n")
}

func (m *Manager) viewAccount(ctx context.Context, state *ports.ConversationState) string {
	acc, err := m.backend.MyAccount(ctx, state.PhoneNumber)
	if err != nil {
		m.warn("account fetch failed", err)
		return m.texts.General("account_error", state.Lang)
	}
	if acc == nil {
		return m.texts.General("no_account", state.Lang)
	}

	state.AccountID = acc.ID
	state.AccountBalance = acc.Balance

	groupement := acc.GroupementName
	if groupement == "" {
		groupement = "-"
	}

	return prompts.Render(m.texts.General("account_card", state.Lang), map[string]string{
		"name":       acc.FullName,
		"phone":      acc.PhoneNumber,
		"balance":    formatAmount(acc.Balance),
		"currency":   m.cfg.Currency,
		"groupement": groupement,
		"status":     acc.Status,
	})
}

func (m *Manager) preloadAccount(ctx context.Context, state *ports.ConversationState) bool {
	acc, err := m.backend.MyAccount(ctx, state.PhoneNumber)
	if err != nil {
		m.warn("account lookup failed", err)
		return false
	}
	if acc == nil {
		return false
	}
	state.AccountID = acc.ID
	state.AccountBalance = acc.Balance
	return true
}

func (m *Manager) warn(msg string, err error) {
	m.log.Log(logger.LogEntry{
		Level:   "warn",
		Message: msg,
		Service: "conversation",
		Error:   err,
	})
}

func containsCancel(text string) bool {
	lowered := strings.ToLower(text)
	return strings.Contains(lowered, "cancel") || strings.Contains(lowered, "annul")
}

package conversation

import (
	"context"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/bafoka-network/voice-assistant/internal/config"
	"github.com/bafoka-network/voice-assistant/internal/ports"
	"github.com/bafoka-network/voice-assistant/internal/prompts"
)

// flowBase carries the dependencies every flow shares. name is the flow's
// key in the prompt catalog.
type flowBase struct {
	name    string
	cfg     config.Config
	backend ports.BafokaClient
	texts   prompts.Service
	risk    ports.RiskAssessor
	log     *logger.ZapLogger
	state   *ports.ConversationState
}

func (b *flowBase) prompt(key string) string {
	return b.texts.Flow(b.name, key, b.state.Lang)
}

func (b *flowBase) promptVars(key string, vars map[string]string) string {
	return prompts.Render(b.texts.Flow(b.name, key, b.state.Lang), vars)
}

func (b *flowBase) general(key string) string {
	return b.texts.General(key, b.state.Lang)
}

// abort resets the flow and hands back the named prompt as the final
// reply of the flow.
func (b *flowBase) abort(key string) (string, bool) {
	b.state.ResetFlow()
	return b.prompt(key), true
}

func (b *flowBase) warn(msg string, err error) {
	b.log.Log(logger.LogEntry{
		Level:   "warn",
		Message: msg,
		Service: "conversation",
		Error:   err,
	})
}

// ensureAccount loads the member profile into the state when it is not
// there yet. Reports whether an account exists.
func (b *flowBase) ensureAccount(ctx context.Context) bool {
	if b.state.AccountID != "" {
		return true
	}

	acc, err := b.backend.MyAccount(ctx, b.state.PhoneNumber)
	if err != nil {
		b.warn("account lookup failed", err)
		return false
	}
	if acc == nil {
		return false
	}

	b.state.AccountID = acc.ID
	b.state.AccountBalance = acc.Balance
	return true
}

// Exact-match confirmation sets for the flows that ask a yes/no question
// and must not misread "no" inside a longer sentence.
var yesWords = map[string]struct{}{
	"yes": {}, "y": {}, "ok": {}, "okay": {}, "confirm": {},
	"proceed": {}, "go ahead": {},
	"oui": {}, "o": {}, "d'accord": {}, "daccord": {},
}

var noWords = map[string]struct{}{
	"no": {}, "n": {}, "cancel": {}, "stop": {},
	"non": {}, "annuler": {}, "annule": {},
}

func lowerTrim(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

func isYesWord(input string) bool {
	_, ok := yesWords[lowerTrim(input)]
	return ok
}

func isNoWord(input string) bool {
	_, ok := noWords[lowerTrim(input)]
	return ok
}

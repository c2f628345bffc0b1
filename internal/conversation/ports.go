package conversation

import (
	"context"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

// Flow step names. They end up in the stored state and in response meta,
// so they stay stable across releases.
const (
	stepAskName            = "ask_name"
	stepAskAge             = "ask_age"
	stepAskSex             = "ask_sex"
	stepAskGroupement      = "ask_groupement"
	stepWhatToChange       = "what_to_change"
	stepAskAmount          = "ask_amount"
	stepAskReceiver        = "ask_receiver"
	stepAskPin             = "ask_pin"
	stepAskOldPassword     = "ask_old_password"
	stepAskNewPassword     = "ask_new_password"
	stepConfirmPassword    = "confirm_password"
	stepAskWhatsappChoice  = "ask_whatsapp_choice"
	stepAskWhatsappNumber  = "ask_whatsapp_number"
	stepAskDashboardAction = "ask_dashboard_action"
	stepConfirm            = "confirm"
	stepComplete           = "complete"
)

// flow is one multi-turn dialog. Process reports done=true when the flow
// ended this turn: either the state still carries the flow type and the
// manager should call Complete, or the flow already reset the state and
// the returned reply is final.
type flow interface {
	Start(ctx context.Context) string
	Process(ctx context.Context, input string) (reply string, done bool)
	Complete(ctx context.Context) (string, map[string]any)
}

// Replier produces a free-form LLM answer for questions no canned
// response covers.
type Replier interface {
	GeneralReply(ctx context.Context, conversationID, userText string) (string, error)
}

func flowLabel(ft ports.FlowType) string {
	if ft == ports.FlowNone {
		return "none"
	}
	return string(ft)
}

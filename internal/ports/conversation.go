package ports

import (
	"context"
	"time"
)

type FlowType string

const (
	FlowNone            FlowType = ""
	FlowAccountCreation FlowType = "account_creation"
	FlowWithdrawal      FlowType = "withdrawal"
	FlowTopup           FlowType = "topup"
	FlowTransfer        FlowType = "transfer"
	FlowPasswordReset   FlowType = "password_reset"
	FlowPasswordChange  FlowType = "password_change"
	FlowWhatsappLink    FlowType = "whatsapp_link"
	FlowDashboard       FlowType = "dashboard"
)

const MaxFlowAttempts = 3

// ConversationState — everything the assistant remembers about one dialog.
// Serialized as-is into the conversation store, so the json tags are the
// storage format.
type ConversationState struct {
	ConversationID string            `json:"conversation_id"`
	UserID         string            `json:"user_id"`
	PhoneNumber    string            `json:"phone_number"`
	FlowType       FlowType          `json:"flow_type"`
	FlowStep       string            `json:"flow_step"`
	CollectedData  map[string]string `json:"collected_data"`
	AccountID      string            `json:"account_id"`
	AccountBalance float64           `json:"account_balance"`
	Attempts       int               `json:"attempts"`
	Lang           string            `json:"lang"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func NewConversationState(conversationID, userID, phoneNumber string) *ConversationState {
	now := time.Now().UTC()
	return &ConversationState{
		ConversationID: conversationID,
		UserID:         userID,
		PhoneNumber:    phoneNumber,
		CollectedData:  map[string]string{},
		Lang:           "en",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (s *ConversationState) InFlow() bool {
	return s.FlowType != FlowNone
}

func (s *ConversationState) StartFlow(flow FlowType, step string) {
	s.FlowType = flow
	s.FlowStep = step
	s.CollectedData = map[string]string{}
	s.Attempts = 0
	s.touch()
}

func (s *ConversationState) NextStep(step string) {
	s.FlowStep = step
	s.Attempts = 0
	s.touch()
}

func (s *ConversationState) ResetFlow() {
	s.FlowType = FlowNone
	s.FlowStep = ""
	s.CollectedData = map[string]string{}
	s.Attempts = 0
	s.touch()
}

func (s *ConversationState) AddData(key, value string) {
	if s.CollectedData == nil {
		s.CollectedData = map[string]string{}
	}
	s.CollectedData[key] = value
	s.touch()
}

func (s *ConversationState) DropData(key string) {
	delete(s.CollectedData, key)
	s.touch()
}

// IncrementAttempts bumps the retry counter for the current step and
// reports whether the flow should be aborted.
func (s *ConversationState) IncrementAttempts() bool {
	s.Attempts++
	s.touch()
	return s.Attempts >= MaxFlowAttempts
}

func (s *ConversationState) touch() {
	s.UpdatedAt = time.Now().UTC()
}

// ConversationStore keeps dialog state between requests. Entries expire
// after the configured TTL.
type ConversationStore interface {
	Get(ctx context.Context, conversationID string) (*ConversationState, error)
	Save(ctx context.Context, state *ConversationState) error
	Delete(ctx context.Context, conversationID string) error
}

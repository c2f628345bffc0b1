package ports

type Intent string

const (
	IntentAccountCreation    Intent = "account_creation"
	IntentViewAccount        Intent = "view_account"
	IntentWithdrawal         Intent = "withdrawal"
	IntentTopup              Intent = "topup"
	IntentTransfer           Intent = "transfer"
	IntentBalanceInquiry     Intent = "balance_inquiry"
	IntentTransactionHistory Intent = "transaction_history"
	IntentDashboard          Intent = "dashboard"
	IntentPasswordReset      Intent = "password_reset"
	IntentPasswordChange     Intent = "password_change"
	IntentWhatsappLink       Intent = "whatsapp_link"
	IntentGreeting           Intent = "greeting"
	IntentGoodbye            Intent = "goodbye"
	IntentGeneralSupport     Intent = "general_support"
	IntentConfirmation       Intent = "confirmation"
	IntentDenial             Intent = "denial"
	IntentOffTopic           Intent = "off_topic"
)

// IntentResult is returned by the classifier and echoed back to clients
// in the response meta block.
type IntentResult struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

type IntentClassifier interface {
	Classify(text string) IntentResult
}

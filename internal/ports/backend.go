package ports

import (
	"context"
	"errors"
	"time"
)

// Transaction types and statuses as the Bafoka backend reports them.
const (
	TxDeposit    = "DEPOSIT"
	TxWithdrawal = "WITHDRAWAL"
	TxTransfer   = "TRANSFER"
	TxTopup      = "TOP_UP"

	TxStatusPending   = "PENDING"
	TxStatusCompleted = "COMPLETED"
	TxStatusFailed    = "FAILED"
	TxStatusCancelled = "CANCELLED"
)

// ErrPhoneTaken is returned by CreateAccount when the phone number is
// already registered.
var ErrPhoneTaken = errors.New("phone number already registered")

type PhoneCheck struct {
	Exists      bool
	PhoneNumber string
	AccountID   string
	Message     string
}

// Account is the profile returned by /api/my-account.
type Account struct {
	ID                string
	AccountNumber     string
	FullName          string
	PhoneNumber       string
	Age               string
	Sex               string
	GroupementID      int
	GroupementName    string
	BlockchainAddress string
	Balance           float64
	Currency          string
	Status            string
	CreatedAt         time.Time
}

// WalletBalance is the CELO wallet balance from /api/get-balance.
type WalletBalance struct {
	PhoneNumber string
	Balance     float64
	Currency    string
}

type CreateAccountRequest struct {
	FullName     string
	PhoneNumber  string
	Age          string
	Sex          string
	GroupementID int
}

// TransferRequest mirrors /api/transfer. The backend wants the amount as a
// string.
type TransferRequest struct {
	PhoneNumber         string
	ReceiverPhoneNumber string
	PIN                 string
	Amount              string
}

type TransferResult struct {
	Status    string
	Reference string
	Message   string
}

// Transaction also carries json tags because the admin dashboard proxy
// returns these records as-is.
type Transaction struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id,omitempty"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	Description   string    `json:"description,omitempty"`
	Reference     string    `json:"reference,omitempty"`
	SenderPhone   string    `json:"sender_phone,omitempty"`
	ReceiverPhone string    `json:"receiver_phone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AmountSummary is the /dashboard/transaction-amount payload.
type AmountSummary struct {
	TotalAmount float64 `json:"total_amount"`
	Currency    string  `json:"currency"`
	Count       int     `json:"count"`
	Period      string  `json:"period,omitempty"`
}

// RegistrationStats is the /dashboard/registrations payload.
type RegistrationStats struct {
	Total     int            `json:"total"`
	Period    string         `json:"period,omitempty"`
	Breakdown map[string]int `json:"breakdown,omitempty"`
}

// AccountHolder is one entry from /dashboard/holders.
type AccountHolder struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	PhoneNumber    string    `json:"phone_number"`
	Balance        float64   `json:"balance"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	GroupementID   int       `json:"groupement_id,omitempty"`
	GroupementName string    `json:"groupement_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// OpResult covers the simple success/failure endpoints (password reset,
// password change, WhatsApp link).
type OpResult struct {
	Success bool
	Linked  bool
	Message string
}

// BafokaClient talks to the Bafoka sandbox backend.
type BafokaClient interface {
	CheckPhone(ctx context.Context, phoneNumber string) (PhoneCheck, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error)
	MyAccount(ctx context.Context, phoneNumber string) (*Account, error)
	WalletBalance(ctx context.Context, phoneNumber string) (WalletBalance, error)

	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
	Withdraw(ctx context.Context, accountID string, amount float64, description string) (*Transaction, error)
	Deposit(ctx context.Context, accountID string, amount float64, description string) (*Transaction, error)
	RecentTransactions(ctx context.Context, accountID string, limit int) ([]Transaction, error)

	ResetPassword(ctx context.Context, phoneNumber string) (OpResult, error)
	ChangePassword(ctx context.Context, phoneNumber, oldPassword, newPassword string) (OpResult, error)
	LinkWhatsApp(ctx context.Context, phoneNumber, whatsappNumber string) (OpResult, error)

	DashboardTransactions(ctx context.Context, phoneNumber string, limit int) ([]Transaction, error)
	TransactionAmount(ctx context.Context) (AmountSummary, error)
	RegistrationStats(ctx context.Context) (RegistrationStats, error)
	AccountHolders(ctx context.Context, limit, page int) ([]AccountHolder, error)
}

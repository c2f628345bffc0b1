package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bafoka-network/voice-assistant/internal/config"
	"github.com/bafoka-network/voice-assistant/internal/ports"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.Config{
		BackendBaseURL: srv.URL,
		BackendTimeout: 2 * time.Second,
	}, logger.NewZapLogger(zap.NewNop().Sugar()))
}

// deadClient points at a closed server so every request fails to connect.
func deadClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return NewClient(config.Config{
		BackendBaseURL: srv.URL,
		BackendTimeout: 500 * time.Millisecond,
	}, logger.NewZapLogger(zap.NewNop().Sugar()))
}

func TestCheckPhoneShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		status     int
		wantExists bool
	}{
		{"bare true", `true`, 200, true},
		{"bare false", `false`, 200, false},
		{"valid field", `{"valid": true}`, 200, true},
		{"exists field", `{"exists": false}`, 200, false},
		{"quoted true", `"true"`, 200, true},
		{"not found", `{"message": "no such account"}`, 404, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/valid-account", r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))

			check, err := c.CheckPhone(context.Background(), "690123456")
			require.NoError(t, err)
			assert.Equal(t, tc.wantExists, check.Exists)
			assert.Equal(t, "690123456", check.PhoneNumber)
		})
	}
}

func TestCheckPhoneBackendDown(t *testing.T) {
	t.Parallel()

	check, err := deadClient(t).CheckPhone(context.Background(), "690123456")
	require.NoError(t, err)
	assert.False(t, check.Exists)
	assert.Contains(t, check.Message, "Backend error")
}

func TestCreateAccountPhoneTaken(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the pre-check answers true, creation must not be reached
		require.Equal(t, "/api/valid-account", r.URL.Path)
		w.Write([]byte(`true`))
	}))

	_, err := c.CreateAccount(context.Background(), ports.CreateAccountRequest{
		FullName: "Marie Ngo", PhoneNumber: "690123456", Age: "30", Sex: "female", GroupementID: 1,
	})
	assert.ErrorIs(t, err, ports.ErrPhoneTaken)
}

func TestCreateAccountConflictFromBackend(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/valid-account" {
			w.Write([]byte(`false`))
			return
		}
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "account already exists"}`))
	}))

	_, err := c.CreateAccount(context.Background(), ports.CreateAccountRequest{
		FullName: "Marie Ngo", PhoneNumber: "690123456", Age: "30", Sex: "female", GroupementID: 1,
	})
	assert.ErrorIs(t, err, ports.ErrPhoneTaken)
}

func TestCreateAccountSuccess(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/valid-account" {
			w.Write([]byte(`false`))
			return
		}
		require.Equal(t, "/api/account-creation", r.URL.Path)
		w.Write([]byte(`{"id": "acc-7", "accountNumber": "001122", "balance": 0, "status": "ACTIVE"}`))
	}))

	acc, err := c.CreateAccount(context.Background(), ports.CreateAccountRequest{
		FullName: "Marie Ngo", PhoneNumber: "690123456", Age: "30", Sex: "female", GroupementID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "acc-7", acc.ID)
	assert.Equal(t, "001122", acc.AccountNumber)
	assert.Equal(t, "Marie Ngo", acc.FullName)
	assert.Equal(t, 2, acc.GroupementID)
}

func TestCreateAccountBackendDownReturnsMock(t *testing.T) {
	t.Parallel()

	acc, err := deadClient(t).CreateAccount(context.Background(), ports.CreateAccountRequest{
		FullName: "Marie Ngo", PhoneNumber: "690123456", Age: "30", Sex: "female", GroupementID: 1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, acc.ID)
	assert.Len(t, acc.AccountNumber, 6)
	assert.Equal(t, "Marie Ngo", acc.FullName)
}

func TestMyAccountParsesEnvelope(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/my-account", r.URL.Path)
		require.Equal(t, "690123456", r.URL.Query().Get("phoneNumber"))
		w.Write([]byte(`{
			"code": 200, "success": true, "message": "ok",
			"data": {
				"id": 42, "fullName": "Marie Ngo", "phoneNumber": "690123456",
				"age": "30", "sex": "female",
				"groupement": {"id": 3, "name": "Bameka"},
				"blockchainAddress": "0xabc", "status": "ACTIVE",
				"createdAt": "2025-03-02T10:00:00Z"
			}
		}`))
	}))

	acc, err := c.MyAccount(context.Background(), "690123456")
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, "42", acc.ID)
	assert.Equal(t, "42", acc.AccountNumber)
	assert.Equal(t, "Marie Ngo", acc.FullName)
	assert.Equal(t, 3, acc.GroupementID)
	assert.Equal(t, "Bameka", acc.GroupementName)
	assert.Equal(t, "0xabc", acc.BlockchainAddress)
	assert.Equal(t, 2025, acc.CreatedAt.Year())
}

func TestMyAccountNotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "Compte introuvable"}`))
	}))

	acc, err := c.MyAccount(context.Background(), "690000000")
	require.NoError(t, err)
	assert.Nil(t, acc)
}

func TestWalletBalance(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/my-account":
			w.Write([]byte(`{"data": {"id": 42, "fullName": "Marie Ngo", "phoneNumber": "690123456", "blockchainAddress": "0xabc"}}`))
		case "/api/get-balance":
			w.Write([]byte(`{"data": {"balance": "0.1234"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	b, err := c.WalletBalance(context.Background(), "690123456")
	require.NoError(t, err)
	assert.Equal(t, 0.1234, b.Balance)
	assert.Equal(t, "CELO", b.Currency)
}

func TestWalletBalanceDegradesToZero(t *testing.T) {
	t.Parallel()

	b, err := deadClient(t).WalletBalance(context.Background(), "690123456")
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Balance)
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/transfer", r.URL.Path)
		w.Write([]byte(`{"status": "SUCCESS", "txHash": "0xdeadbeef"}`))
	}))

	res, err := c.Transfer(context.Background(), ports.TransferRequest{
		PhoneNumber: "690123456", ReceiverPhoneNumber: "677000000", PIN: "1234", Amount: "5000",
	})
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", res.Status)
	assert.Equal(t, "0xdeadbeef", res.Reference)
}

func TestTransferBackendDownReturnsMockReference(t *testing.T) {
	t.Parallel()

	res, err := deadClient(t).Transfer(context.Background(), ports.TransferRequest{
		PhoneNumber: "690123456", ReceiverPhoneNumber: "677000000", PIN: "1234", Amount: "5000",
	})
	require.NoError(t, err)
	assert.Equal(t, "MOCK_SUCCESS", res.Status)
	assert.Regexp(t, `^MOCK-[0-9A-F]{10}$`, res.Reference)
}

func TestTransferRejectedByBackend(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "invalid pin"}`))
	}))

	_, err := c.Transfer(context.Background(), ports.TransferRequest{
		PhoneNumber: "690123456", ReceiverPhoneNumber: "677000000", PIN: "0000", Amount: "5000",
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid pin", apiErr.Message)
}

func TestRecentTransactions(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/accounts/acc-7/transactions", r.URL.Path)
		require.Equal(t, "5", r.URL.Query().Get("pageSize"))
		w.Write([]byte(`{"transactions": [
			{"id": "t1", "type": "DEPOSIT", "amount": 10000, "status": "COMPLETED"},
			{"id": "t2", "type": "WITHDRAWAL", "amount": 2500, "status": "PENDING"}
		]}`))
	}))

	txs, err := c.RecentTransactions(context.Background(), "acc-7", 5)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, ports.TxDeposit, txs[0].Type)
	assert.Equal(t, 2500.0, txs[1].Amount)
	assert.Equal(t, ports.TxStatusPending, txs[1].Status)
}

func TestRecentTransactionsFallsBackToMock(t *testing.T) {
	t.Parallel()

	txs, err := deadClient(t).RecentTransactions(context.Background(), "acc-7", 5)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "mock-1", txs[0].ID)
	assert.Equal(t, "mock-2", txs[1].ID)
}

func TestDashboardTransactionsShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare list", `[{"id": "t1", "type": "transfer", "amount": "1500", "createdAt": "2025-01-05T08:00:00Z"}]`, 1},
		{"data wrapper", `{"data": [{"id": "t1", "amount": 100}, {"id": "t2", "amount": 200}]}`, 2},
		{"transactions wrapper", `{"transactions": [{"id": "t1", "amount": 100}]}`, 1},
		{"unknown shape", `{"weird": true}`, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/dashboard/transactions", r.URL.Path)
				w.Write([]byte(tc.body))
			}))

			txs, err := c.DashboardTransactions(context.Background(), "690123456", 10)
			require.NoError(t, err)
			assert.Len(t, txs, tc.want)
		})
	}
}

func TestDashboardTransactionNormalization(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 9, "type": "mystery", "status": "odd", "amount": "750.5", "txHash": "0xbeef", "sender_phone": "690111111"}]`))
	}))

	txs, err := c.DashboardTransactions(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	// unknown type and status fall back to safe defaults
	assert.Equal(t, ports.TxTransfer, txs[0].Type)
	assert.Equal(t, ports.TxStatusCompleted, txs[0].Status)
	assert.Equal(t, "9", txs[0].ID)
	assert.Equal(t, 750.5, txs[0].Amount)
	assert.Equal(t, "0xbeef", txs[0].Reference)
	assert.Equal(t, "690111111", txs[0].SenderPhone)
}

func TestTransactionAmountKeyDrift(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want float64
	}{
		{"camel", `{"totalAmount": 123000, "count": 17, "period": "monthly"}`, 123000},
		{"snake", `{"data": {"total_amount": "5000.5"}}`, 5000.5},
		{"total", `{"total": 42}`, 42},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))

			summary, err := c.TransactionAmount(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, summary.TotalAmount)
			assert.Equal(t, "XAF", summary.Currency)
		})
	}
}

func TestRegistrationStats(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"totalRegistrations": 321, "period": "weekly", "breakdown": {"Batoufam": 120, "Bameka": 201}}}`))
	}))

	stats, err := c.RegistrationStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 321, stats.Total)
	assert.Equal(t, "weekly", stats.Period)
	assert.Equal(t, map[string]int{"Batoufam": 120, "Bameka": 201}, stats.Breakdown)
}

func TestAccountHolders(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dashboard/holders", r.URL.Path)
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"holders": [
			{"id": 1, "fullName": "Marie Ngo", "phoneNumber": "690123456", "balance": "1200", "groupement": {"id": 3, "name": "Bameka"}},
			{"id": 2, "full_name": "Paul Kamdem", "phone_number": "677000000", "groupement_id": 1, "groupementName": "Batoufam"}
		]}`))
	}))

	holders, err := c.AccountHolders(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, holders, 2)
	assert.Equal(t, "Marie Ngo", holders[0].FullName)
	assert.Equal(t, "Bameka", holders[0].GroupementName)
	assert.Equal(t, 1200.0, holders[0].Balance)
	assert.Equal(t, "Paul Kamdem", holders[1].FullName)
	assert.Equal(t, 1, holders[1].GroupementID)
	assert.Equal(t, "Batoufam", holders[1].GroupementName)
}

func TestOpResults(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/reset-password":
			w.Write([]byte(`{"success": true, "message": "reset link sent"}`))
		case "/api/change-password":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "wrong password"}`))
		case "/api/link":
			w.Write([]byte(`{"success": true, "linked": true}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	reset, err := c.ResetPassword(context.Background(), "690123456")
	require.NoError(t, err)
	assert.True(t, reset.Success)
	assert.Equal(t, "reset link sent", reset.Message)

	change, err := c.ChangePassword(context.Background(), "690123456", "old", "newpass")
	require.NoError(t, err)
	assert.False(t, change.Success)
	assert.Equal(t, "wrong password", change.Message)

	link, err := c.LinkWhatsApp(context.Background(), "690123456", "677000000")
	require.NoError(t, err)
	assert.True(t, link.Success)
	assert.True(t, link.Linked)
}

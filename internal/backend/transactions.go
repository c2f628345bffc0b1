package backend

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/google/uuid"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

// Transfer moves tokens to the receiver via /api/transfer. The backend
// wants the amount as a string. When the backend is unreachable a mock
// reference is issued so sandbox conversations can complete.
func (c *Client) Transfer(ctx context.Context, req ports.TransferRequest) (*ports.TransferResult, error) {
	raw, err := c.post(ctx, "/api/transfer", map[string]string{
		"phoneNumber":         req.PhoneNumber,
		"receiverPhoneNumber": req.ReceiverPhoneNumber,
		"pin":                 req.PIN,
		"amount":              req.Amount,
	}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 503 {
			c.log.Log(logger.LogEntry{Level: "warn", Message: "transfer unreachable, returning mock reference", Service: "backend", Error: err})
			return &ports.TransferResult{
				Status:    "MOCK_SUCCESS",
				Reference: "MOCK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10]),
				Message:   "Mock transfer executed (backend unreachable).",
			}, nil
		}
		return nil, err
	}

	m := asMap(raw)
	res := &ports.TransferResult{
		Status:    "SUCCESS",
		Reference: asString(firstOf(m, "reference", "txHash", "transactionHash")),
		Message:   asString(m["message"]),
	}
	if v := asString(m["status"]); v != "" {
		res.Status = v
	}
	return res, nil
}

// Withdraw posts /api/v1/transactions/withdraw for the account.
func (c *Client) Withdraw(ctx context.Context, accountID string, amount float64, description string) (*ports.Transaction, error) {
	if description == "" {
		description = "Voice assistant withdrawal"
	}
	return c.createTransaction(ctx, "/api/v1/transactions/withdraw", accountID, amount, description, ports.TxWithdrawal)
}

// Deposit posts /api/v1/transactions/deposit for the account.
func (c *Client) Deposit(ctx context.Context, accountID string, amount float64, description string) (*ports.Transaction, error) {
	if description == "" {
		description = "Voice assistant deposit"
	}
	return c.createTransaction(ctx, "/api/v1/transactions/deposit", accountID, amount, description, ports.TxDeposit)
}

func (c *Client) createTransaction(ctx context.Context, path, accountID string, amount float64, description, txType string) (*ports.Transaction, error) {
	raw, err := c.post(ctx, path, map[string]any{
		"accountId":   accountID,
		"amount":      amount,
		"description": description,
	}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 503 {
			c.log.Log(logger.LogEntry{Level: "warn", Message: "transaction endpoint unreachable, returning mock", Service: "backend", Error: err})
			return &ports.Transaction{
				ID:          uuid.NewString(),
				AccountID:   accountID,
				Type:        txType,
				Amount:      amount,
				Currency:    "XAF",
				Status:      ports.TxStatusCompleted,
				Description: description,
			}, nil
		}
		return nil, err
	}

	m := asMap(raw)
	tx := &ports.Transaction{
		ID:          asString(m["id"]),
		AccountID:   accountID,
		Type:        txType,
		Amount:      amount,
		Currency:    "XAF",
		Status:      ports.TxStatusCompleted,
		Description: description,
		Reference:   asString(m["reference"]),
	}
	if v := asString(m["currency"]); v != "" {
		tx.Currency = v
	}
	if v := asString(m["status"]); v != "" {
		tx.Status = v
	}
	return tx, nil
}

// RecentTransactions lists the account's latest transactions via the older
// per-account endpoint. Any failure yields a small mock history so the
// sandbox conversation still has something to read back.
func (c *Client) RecentTransactions(ctx context.Context, accountID string, limit int) ([]ports.Transaction, error) {
	query := url.Values{}
	query.Set("page", "1")
	query.Set("pageSize", strconv.Itoa(limit))

	raw, err := c.get(ctx, "/api/v1/accounts/"+accountID+"/transactions", query)
	if err != nil {
		c.log.Log(logger.LogEntry{Level: "warn", Message: "recent transactions failed, returning mock history", Service: "backend", Error: err})
		return mockHistory(accountID), nil
	}

	m := asMap(raw)
	if m == nil {
		return mockHistory(accountID), nil
	}

	items, _ := m["transactions"].([]any)
	out := make([]ports.Transaction, 0, len(items))
	for _, it := range items {
		t := asMap(it)
		if t == nil {
			continue
		}
		amount, _ := asFloat(t["amount"])
		tx := ports.Transaction{
			ID:          asString(t["id"]),
			AccountID:   accountID,
			Type:        ports.TxDeposit,
			Amount:      amount,
			Currency:    "XAF",
			Status:      ports.TxStatusCompleted,
			Description: asString(t["description"]),
			Reference:   asString(t["reference"]),
		}
		if v := asString(t["type"]); v != "" {
			tx.Type = v
		}
		if v := asString(t["currency"]); v != "" {
			tx.Currency = v
		}
		if v := asString(t["status"]); v != "" {
			tx.Status = v
		}
		out = append(out, tx)
	}
	return out, nil
}

func mockHistory(accountID string) []ports.Transaction {
	return []ports.Transaction{
		{ID: "mock-1", AccountID: accountID, Type: ports.TxDeposit, Amount: 10000, Currency: "XAF", Status: ports.TxStatusCompleted, Description: "Mock deposit"},
		{ID: "mock-2", AccountID: accountID, Type: ports.TxWithdrawal, Amount: 5000, Currency: "XAF", Status: ports.TxStatusCompleted, Description: "Mock withdrawal"},
	}
}

// DashboardTransactions lists transactions via GET /dashboard/transactions.
// Dashboard reads degrade to empty results on failure.
func (c *Client) DashboardTransactions(ctx context.Context, phoneNumber string, limit int) ([]ports.Transaction, error) {
	query := url.Values{}
	if phoneNumber != "" {
		query.Set("phoneNumber", phoneNumber)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	raw, err := c.get(ctx, "/dashboard/transactions", query)
	if err != nil {
		c.log.Log(logger.LogEntry{Level: "error", Message: "dashboard transactions failed", Service: "backend", Error: err})
		return nil, nil
	}
	return parseTransactions(raw), nil
}

// TransactionAmount reads the network-wide totals from
// GET /dashboard/transaction-amount.
func (c *Client) TransactionAmount(ctx context.Context) (ports.AmountSummary, error) {
	raw, err := c.get(ctx, "/dashboard/transaction-amount", nil)
	if err != nil {
		c.log.Log(logger.LogEntry{Level: "error", Message: "transaction amount failed", Service: "backend", Error: err})
		return ports.AmountSummary{Currency: "XAF"}, nil
	}

	data := dataOf(raw)
	if data == nil {
		return ports.AmountSummary{Currency: "XAF"}, nil
	}

	total, _ := asFloat(firstOf(data, "totalAmount", "total_amount", "amount", "total"))
	summary := ports.AmountSummary{
		TotalAmount: total,
		Currency:    "XAF",
		Period:      asString(data["period"]),
	}
	if v := asString(data["currency"]); v != "" {
		summary.Currency = v
	}
	if n, ok := asInt(firstOf(data, "count", "transactionCount")); ok {
		summary.Count = n
	}
	return summary, nil
}

// RegistrationStats reads GET /dashboard/registrations.
func (c *Client) RegistrationStats(ctx context.Context) (ports.RegistrationStats, error) {
	raw, err := c.get(ctx, "/dashboard/registrations", nil)
	if err != nil {
		c.log.Log(logger.LogEntry{Level: "error", Message: "registration stats failed", Service: "backend", Error: err})
		return ports.RegistrationStats{}, nil
	}

	data := dataOf(raw)
	if data == nil {
		return ports.RegistrationStats{}, nil
	}

	total, _ := asInt(firstOf(data, "totalRegistrations", "total_registrations", "total", "count"))
	stats := ports.RegistrationStats{
		Total:  total,
		Period: asString(data["period"]),
	}

	if breakdown := asMap(firstOf(data, "breakdown", "stats")); breakdown != nil {
		stats.Breakdown = make(map[string]int, len(breakdown))
		for k, v := range breakdown {
			if n, ok := asInt(v); ok {
				stats.Breakdown[k] = n
			}
		}
	}
	return stats, nil
}

// AccountHolders lists registered members via GET /dashboard/holders.
func (c *Client) AccountHolders(ctx context.Context, limit, page int) ([]ports.AccountHolder, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	raw, err := c.get(ctx, "/dashboard/holders", query)
	if err != nil {
		c.log.Log(logger.LogEntry{Level: "error", Message: "account holders failed", Service: "backend", Error: err})
		return nil, nil
	}
	return parseHolders(raw), nil
}

// itemsOf finds the list inside either a bare JSON array or a wrapper
// object using any of the given keys.
func itemsOf(raw any, keys ...string) []any {
	if list, ok := raw.([]any); ok {
		return list
	}
	m := asMap(raw)
	if m == nil {
		return nil
	}
	for _, k := range keys {
		if list, ok := m[k].([]any); ok {
			return list
		}
	}
	return nil
}

func parseTransactions(raw any) []ports.Transaction {
	items := itemsOf(raw, "data", "transactions", "items")
	out := make([]ports.Transaction, 0, len(items))

	for _, it := range items {
		t := asMap(it)
		if t == nil {
			continue
		}

		amount, _ := asFloat(t["amount"])
		tx := ports.Transaction{
			ID:            asString(t["id"]),
			AccountID:     asString(firstOf(t, "accountId", "account_id")),
			Type:          ports.TxTransfer,
			Amount:        amount,
			Currency:      "XAF",
			Status:        ports.TxStatusCompleted,
			Description:   asString(t["description"]),
			Reference:     asString(firstOf(t, "reference", "txHash")),
			SenderPhone:   asString(firstOf(t, "senderPhone", "sender_phone")),
			ReceiverPhone: asString(firstOf(t, "receiverPhone", "receiver_phone")),
		}
		if v := strings.ToUpper(asString(t["type"])); isKnownTxType(v) {
			tx.Type = v
		}
		if v := strings.ToUpper(asString(t["status"])); isKnownTxStatus(v) {
			tx.Status = v
		}
		if v := asString(t["currency"]); v != "" {
			tx.Currency = v
		}
		if ts, ok := parseTime(asString(t["createdAt"])); ok {
			tx.CreatedAt = ts
		}
		out = append(out, tx)
	}
	return out
}

func parseHolders(raw any) []ports.AccountHolder {
	items := itemsOf(raw, "data", "holders", "accounts", "items")
	out := make([]ports.AccountHolder, 0, len(items))

	for _, it := range items {
		h := asMap(it)
		if h == nil {
			continue
		}

		balance, _ := asFloat(h["balance"])
		holder := ports.AccountHolder{
			ID:          asString(h["id"]),
			FullName:    asString(firstOf(h, "fullName", "full_name")),
			PhoneNumber: asString(firstOf(h, "phoneNumber", "phone_number")),
			Balance:     balance,
			Currency:    "XAF",
			Status:      "ACTIVE",
		}
		if v := asString(h["currency"]); v != "" {
			holder.Currency = v
		}
		if v := asString(h["status"]); v != "" {
			holder.Status = v
		}
		if groupement := asMap(h["groupement"]); groupement != nil {
			if id, ok := asInt(groupement["id"]); ok {
				holder.GroupementID = id
			}
			holder.GroupementName = asString(groupement["name"])
		} else {
			if id, ok := asInt(h["groupement_id"]); ok {
				holder.GroupementID = id
			}
			holder.GroupementName = asString(h["groupementName"])
		}
		if ts, ok := parseTime(asString(h["createdAt"])); ok {
			holder.CreatedAt = ts
		}
		out = append(out, holder)
	}
	return out
}

func isKnownTxType(v string) bool {
	switch v {
	case ports.TxDeposit, ports.TxWithdrawal, ports.TxTransfer, ports.TxTopup:
		return true
	}
	return false
}

func isKnownTxStatus(v string) bool {
	switch v {
	case ports.TxStatusPending, ports.TxStatusCompleted, ports.TxStatusFailed, ports.TxStatusCancelled:
		return true
	}
	return false
}

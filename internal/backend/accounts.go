package backend

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"net/url"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/google/uuid"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

// CheckPhone asks /api/valid-account whether the number is registered.
// The endpoint is documented to return bare true/false but has been seen
// wrapping the answer, so every shape is accepted. Backend failures are
// treated as "does not exist" to keep flows moving.
func (c *Client) CheckPhone(ctx context.Context, phoneNumber string) (ports.PhoneCheck, error) {
	raw, err := c.post(ctx, "/api/valid-account", map[string]string{"phoneNumber": phoneNumber}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			msg := "Backend error: " + apiErr.Message
			if apiErr.StatusCode == 404 {
				msg = "Phone number not found"
			}
			return ports.PhoneCheck{Exists: false, PhoneNumber: phoneNumber, Message: msg}, nil
		}
		return ports.PhoneCheck{Exists: false, PhoneNumber: phoneNumber, Message: "Error checking phone: " + err.Error()}, nil
	}

	check := ports.PhoneCheck{PhoneNumber: phoneNumber}

	switch v := raw.(type) {
	case bool:
		check.Exists = v
	case map[string]any:
		if val, ok := v["valid"]; ok {
			check.Exists = asBool(val)
		} else if val, ok := v["exists"]; ok {
			check.Exists = asBool(val)
		} else {
			check.Exists = len(v) > 0
		}
		check.AccountID = asString(v["accountId"])
		check.Message = asString(v["message"])
	default:
		s := strings.ToLower(strings.TrimSpace(asString(raw)))
		check.Exists = s == "true" || s == "1" || s == "yes"
	}

	return check, nil
}

// CreateAccount registers a member via /api/account-creation. The phone is
// checked first so a duplicate fails before the backend round trip. When
// the backend is unreachable a mock account is returned so the sandbox
// conversation can still finish.
func (c *Client) CreateAccount(ctx context.Context, req ports.CreateAccountRequest) (*ports.Account, error) {
	check, err := c.CheckPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if check.Exists {
		return nil, fmt.Errorf("%w: %s", ports.ErrPhoneTaken, req.PhoneNumber)
	}

	raw, err := c.post(ctx, "/api/account-creation", map[string]any{
		"phoneNumber":   req.PhoneNumber,
		"fullName":      req.FullName,
		"age":           req.Age,
		"sex":           req.Sex,
		"groupement_id": req.GroupementID,
	}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode == 409 || strings.Contains(strings.ToLower(apiErr.Message), "already exists") {
				return nil, fmt.Errorf("%w: %s", ports.ErrPhoneTaken, req.PhoneNumber)
			}
			if apiErr.StatusCode == 503 {
				c.log.Log(logger.LogEntry{Level: "warn", Message: "account-creation unreachable, returning mock account", Service: "backend", Error: err})
				return mockAccount(req), nil
			}
		}
		return nil, err
	}

	m := asMap(raw)
	acc := &ports.Account{
		ID:           asString(m["id"]),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Age:          req.Age,
		Sex:          req.Sex,
		GroupementID: req.GroupementID,
		Currency:     "XAF",
		Status:       "ACTIVE",
	}
	if v := asString(m["accountNumber"]); v != "" {
		acc.AccountNumber = v
	}
	if v := asString(m["fullName"]); v != "" {
		acc.FullName = v
	}
	if v := asString(m["phoneNumber"]); v != "" {
		acc.PhoneNumber = v
	}
	if v, ok := asFloat(m["balance"]); ok {
		acc.Balance = v
	}
	if v := asString(m["currency"]); v != "" {
		acc.Currency = v
	}
	if v := asString(m["status"]); v != "" {
		acc.Status = v
	}
	return acc, nil
}

func mockAccount(req ports.CreateAccountRequest) *ports.Account {
	h := fnv.New32a()
	h.Write([]byte(req.PhoneNumber))
	return &ports.Account{
		ID:            uuid.NewString(),
		AccountNumber: fmt.Sprintf("%06d", h.Sum32()%1000000),
		FullName:      req.FullName,
		PhoneNumber:   req.PhoneNumber,
		Age:           req.Age,
		Sex:           req.Sex,
		GroupementID:  req.GroupementID,
		Currency:      "XAF",
		Status:        "ACTIVE",
	}
}

// MyAccount fetches the member profile. The phone number goes as a query
// parameter even though the method is POST, matching the backend Swagger.
// A (400|404, "Compte introuvable") answer means no account and returns
// (nil, nil).
func (c *Client) MyAccount(ctx context.Context, phoneNumber string) (*ports.Account, error) {
	query := url.Values{}
	query.Set("phoneNumber", phoneNumber)

	raw, err := c.post(ctx, "/api/my-account", nil, query)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if (apiErr.StatusCode == 400 || apiErr.StatusCode == 404) &&
				strings.Contains(strings.ToLower(apiErr.Message), "compte introuvable") {
				return nil, nil
			}
		}
		return nil, err
	}

	m := asMap(raw)
	if m == nil {
		return nil, nil
	}
	data := asMap(m["data"])
	if data == nil {
		return nil, nil
	}

	groupement := asMap(data["groupement"])

	acc := &ports.Account{
		ID:                asString(data["id"]),
		FullName:          asString(data["fullName"]),
		PhoneNumber:       phoneNumber,
		Age:               asString(data["age"]),
		Sex:               asString(data["sex"]),
		BlockchainAddress: asString(data["blockchainAddress"]),
		Currency:          "XAF",
		Status:            "ACTIVE",
	}
	// the profile endpoint has no separate account number
	acc.AccountNumber = acc.ID
	if v := asString(data["phoneNumber"]); v != "" {
		acc.PhoneNumber = v
	}
	if groupement != nil {
		if id, ok := asInt(groupement["id"]); ok {
			acc.GroupementID = id
		}
		acc.GroupementName = asString(groupement["name"])
	}
	if v := asString(data["status"]); v != "" {
		acc.Status = v
	}
	if ts, ok := parseTime(asString(data["createdAt"])); ok {
		acc.CreatedAt = ts
	}
	return acc, nil
}

// WalletBalance reads the CELO wallet via /api/get-balance. The endpoint
// wants the whole profile in the payload, so the account is fetched first.
// Every failure mode degrades to a zero balance instead of an error; a
// voice flow must never die on a balance read.
func (c *Client) WalletBalance(ctx context.Context, phoneNumber string) (ports.WalletBalance, error) {
	zero := ports.WalletBalance{PhoneNumber: phoneNumber, Balance: 0, Currency: "CELO"}

	account, err := c.MyAccount(ctx, phoneNumber)
	if err != nil || account == nil {
		if err != nil {
			c.log.Log(logger.LogEntry{Level: "warn", Message: "get-balance skipped, profile fetch failed", Service: "backend", Error: err})
		}
		return zero, nil
	}

	raw, err := c.post(ctx, "/api/get-balance", map[string]any{
		"phoneNumber":       account.PhoneNumber,
		"fullName":          account.FullName,
		"age":               account.Age,
		"sex":               account.Sex,
		"groupement_id":     account.GroupementID,
		"blockchainAddress": account.BlockchainAddress,
	}, nil)
	if err != nil {
		c.log.Log(logger.LogEntry{Level: "error", Message: "get-balance failed", Service: "backend", Error: err})
		return zero, nil
	}

	data := dataOf(raw)
	if data == nil {
		return zero, nil
	}

	balance, _ := asFloat(firstOf(data, "balance", "celoBalance", "walletBalance"))
	return ports.WalletBalance{PhoneNumber: phoneNumber, Balance: balance, Currency: "CELO"}, nil
}

// ResetPassword triggers POST /api/reset-password for the registered number.
func (c *Client) ResetPassword(ctx context.Context, phoneNumber string) (ports.OpResult, error) {
	raw, err := c.post(ctx, "/api/reset-password", map[string]string{"phoneNumber": phoneNumber}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return ports.OpResult{Success: false, Message: apiErr.Message}, nil
		}
		return ports.OpResult{}, err
	}
	return opResult(raw), nil
}

// ChangePassword calls POST /api/change-password.
func (c *Client) ChangePassword(ctx context.Context, phoneNumber, oldPassword, newPassword string) (ports.OpResult, error) {
	raw, err := c.post(ctx, "/api/change-password", map[string]string{
		"phoneNumber": phoneNumber,
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return ports.OpResult{Success: false, Message: apiErr.Message}, nil
		}
		return ports.OpResult{}, err
	}
	return opResult(raw), nil
}

// LinkWhatsApp calls POST /api/link to attach a WhatsApp number.
func (c *Client) LinkWhatsApp(ctx context.Context, phoneNumber, whatsappNumber string) (ports.OpResult, error) {
	raw, err := c.post(ctx, "/api/link", map[string]string{
		"phoneNumber":    phoneNumber,
		"whatsappNumber": whatsappNumber,
	}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return ports.OpResult{Success: false, Message: apiErr.Message}, nil
		}
		return ports.OpResult{}, err
	}

	res := opResult(raw)
	res.Linked = res.Success
	if m := asMap(raw); m != nil {
		if v, ok := m["linked"]; ok {
			res.Linked = asBool(v)
		}
	}
	return res, nil
}

// opResult reads the {success, message} answer of the simple mutation
// endpoints. An empty body counts as success (2xx with no payload).
func opResult(raw any) ports.OpResult {
	m := asMap(raw)
	if m == nil {
		return ports.OpResult{Success: true}
	}
	res := ports.OpResult{Success: true, Message: asString(m["message"])}
	if v, ok := m["success"]; ok {
		res.Success = asBool(v)
	}
	return res
}

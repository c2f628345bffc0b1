package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"

	"github.com/bafoka-network/voice-assistant/internal/config"
)

// APIError is returned for any non-2xx answer from the Bafoka backend.
// Connection failures surface as status 503 so callers can treat both
// uniformly.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend api error (%d): %s", e.StatusCode, e.Message)
}

// Client talks to the Bafoka sandbox/production API. The API is loosely
// typed (some endpoints return bare booleans, some wrap payloads in
// {code, message, data, success}), so requests decode into `any` and the
// parse helpers in this package pick the pieces out.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *logger.ZapLogger
}

func NewClient(cfg config.Config, log *logger.ZapLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BackendBaseURL, "/"),
		apiKey:  cfg.BackendAPIKey,
		http:    &http.Client{Timeout: cfg.BackendTimeout},
		log:     log,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, nil, query)
}

func (c *Client) post(ctx context.Context, path string, body any, query url.Values) (any, error) {
	return c.do(ctx, http.MethodPost, path, body, query)
}

func (c *Client) do(ctx context.Context, method, path string, body any, query url.Values) (any, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Log(logger.LogEntry{Level: "error", Message: "backend request failed", Service: "backend", Error: err})
		return nil, &APIError{StatusCode: http.StatusServiceUnavailable, Message: "failed to connect to backend: " + err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		msg := "Unknown error"
		var parsed map[string]any
		if err := json.Unmarshal(raw, &parsed); err == nil {
			if m := asString(parsed["message"]); m != "" {
				msg = m
			}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// some endpoints answer with bare text like "true"
		return strings.TrimSpace(string(raw)), nil
	}
	return decoded, nil
}

// ---- loose-shape helpers ----

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// dataOf unwraps the {code, message, data, success} envelope many Bafoka
// endpoints use; if there is no data object the input itself is returned.
func dataOf(v any) map[string]any {
	m := asMap(v)
	if m == nil {
		return nil
	}
	if d := asMap(m["data"]); d != nil {
		return d
	}
	return m
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	f, ok := asFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "1" || s == "yes"
	case float64:
		return t != 0
	default:
		return false
	}
}

// firstOf returns the first present key, letting the parsers cope with the
// backend's camelCase/snake_case drift.
func firstOf(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// parseTime accepts both RFC3339 ("...Z" / "...+01:00") and the naive
// timestamps some backend endpoints emit.
func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, true
	}
	if ts, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return ts, true
	}
	return time.Time{}, false
}

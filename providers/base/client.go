package base

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingQuery       = errors.New("missing query")
	ErrMissingCredentials = errors.New("missing provider credentials")
)

// BaseClient handles the HTTP plumbing shared by the food providers.
type BaseClient struct {
	Client *http.Client
}

// NewBaseClient creates a BaseClient with the given request timeout.
func NewBaseClient(timeout time.Duration) *BaseClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BaseClient{Client: &http.Client{Timeout: timeout}}
}

// GetJSON issues a GET and decodes the JSON body into out.
// Non-2xx responses become errors carrying the status and body text.
func (b *BaseClient) GetJSON(ctx context.Context, url string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Number reads a numeric field out of a decoded JSON object.
// Missing or non-numeric values (premium-only placeholders, for example) read as 0.
func Number(raw map[string]any, keys ...string) float64 {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// Package upstream implements the HTTP client for the remote shipments API.
// It is the single place where transport failures, rejected requests, and
// session expiry are translated into the portal's error taxonomy.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/envialo/shipping-portal/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Client is the shared HTTP transport for all upstream gateways.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client for the given base URL. A default timeout is
// applied when none is provided; any stricter policy is deployment
// configuration, not portal logic.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// errorEnvelope is the upstream's error body shape; message takes precedence
// over error when both are present.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one JSON round trip. Error mapping:
//   - no response at all → domain.ErrUpstreamUnavailable (wrapped)
//   - 401               → domain.ErrSessionExpired
//   - other 4xx/5xx     → *domain.UpstreamError with the server message
//   - undecodable 2xx   → domain.ErrInvalidPayload (wrapped)
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("upstream request failed")
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.ErrSessionExpired
	}
	if resp.StatusCode >= 400 {
		var env errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&env)
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		return &domain.UpstreamError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrInvalidPayload, err)
	}
	return nil
}

// Package webhook delivers finished intake submissions to the external
// automation endpoint that generates and emails the market guide.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/guidepost-labs/guidepost/internal/lead"
)

const maxBodySize = 1 << 16 // 64 KB, error bodies only

// Client posts submission payloads to a fixed intake endpoint. The endpoint
// URL is resolved from config once at startup and injected here; the client
// never consults ambient environment state.
type Client struct {
	url          string
	brokerageID  string
	intakeSecret string
	http         *http.Client
}

// NewClient creates a client for the given endpoint and identity constants.
func NewClient(url, brokerageID, intakeSecret string) *Client {
	return &Client{
		url:          url,
		brokerageID:  brokerageID,
		intakeSecret: intakeSecret,
		// No request timeout: submission is single-shot and user-gated,
		// and the automation endpoint can take a while to accept.
		http: &http.Client{},
	}
}

// Submit sends exactly one POST carrying the resolved payload. Any non-2xx
// response is a uniform failure; there is no retry.
func (c *Client) Submit(ctx context.Context, d lead.Draft, budgetMin, budgetMax int64) error {
	payload := BuildPayload(d, budgetMin, budgetMax, c.brokerageID, c.intakeSecret)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "github.com/guidepost-labs/guidepost/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a bounded amount so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return fmt.Errorf("webhook: endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tsawler/pagina/model"
)

// HTTPClient is an Advisor backed by a networked classification service.
//
// The wire contract: POST {"text": "..."} to the configured URL; the service
// replies with {"intent": "SHOW"|"SUPPORT"|"SAY", "is_anchor": bool,
// "confidence": 0..1}, or an empty object when it has no opinion.
type HTTPClient struct {
	url    string
	client *http.Client
}

// NewHTTPClient builds an advisor client for the given endpoint.
func NewHTTPClient(url string) *HTTPClient {
	return &HTTPClient{
		url: url,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// WithHTTPClient swaps the underlying http.Client and returns the advisor.
func (c *HTTPClient) WithHTTPClient(hc *http.Client) *HTTPClient {
	if hc != nil {
		c.client = hc
	}
	return c
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Intent     *string  `json:"intent"`
	IsAnchor   *bool    `json:"is_anchor"`
	Confidence *float64 `json:"confidence"`
}

// Classify implements Advisor.
func (c *HTTPClient) Classify(ctx context.Context, text string) (*Advice, error) {
	body, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encoding advisory request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building advisory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("advisory call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("advisory call: unexpected status %d", resp.StatusCode)
	}

	var cr classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decoding advisory response: %w", err)
	}

	// An empty reply means no opinion.
	if cr.Intent == nil && cr.IsAnchor == nil && cr.Confidence == nil {
		return nil, nil
	}
	if cr.Intent == nil || cr.Confidence == nil {
		return nil, fmt.Errorf("advisory response missing required fields")
	}

	intent, ok := model.ParseIntent(*cr.Intent)
	if !ok {
		return nil, fmt.Errorf("advisory response has unknown intent %q", *cr.Intent)
	}

	advice := &Advice{
		Intent:     intent,
		Confidence: *cr.Confidence,
	}
	if cr.IsAnchor != nil {
		advice.IsAnchor = *cr.IsAnchor
	}
	return advice, nil
}

// interface guard
var _ Advisor = (*HTTPClient)(nil)

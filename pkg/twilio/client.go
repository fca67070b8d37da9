// Package twilio provides a client for placing outbound voice calls through
// the Twilio REST API, plus the TwiML document model rendered back to the
// provider from webhook handlers.
package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.twilio.com/2010-04-01"

// Client represents a Twilio client used to place outbound calls.
type Client struct {
	accountSID string
	authToken  string
	from       string       // caller id for outbound calls
	apiBase    string       // overridable for tests
	client     *http.Client // HTTP client used to make requests
}

// NewClient creates a new Twilio Client instance. The timeout bounds one call
// placement request; a timed-out placement is a placement failure.
func NewClient(accountSID, authToken, from string, timeout time.Duration) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		apiBase:    defaultAPIBase,
		client:     &http.Client{Timeout: timeout},
	}
}

// SetAPIBase overrides the Twilio API base URL.
func (c *Client) SetAPIBase(base string) { c.apiBase = base }

// callResponse is the subset of the Twilio calls API response we read.
type callResponse struct {
	SID string `json:"sid"`
}

// PlaceCall asks Twilio to call the given number. The provider fetches TwiML
// from answerURL when the callee picks up and posts lifecycle events to
// statusURL. Returns the provider's call reference (the call SID).
func (c *Client) PlaceCall(ctx context.Context, to, answerURL, statusURL string) (string, error) {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Calls.json", c.apiBase, c.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Url", answerURL)
	form.Set("StatusCallback", statusURL)
	for _, ev := range []string{"initiated", "ringing", "answered", "completed"} {
		form.Add("StatusCallbackEvent", ev)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("place call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("twilio API error: %s", resp.Status)
	}

	var call callResponse
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if call.SID == "" {
		return "", fmt.Errorf("twilio API returned no call sid")
	}

	return call.SID, nil
}

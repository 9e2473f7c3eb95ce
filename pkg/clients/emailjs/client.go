package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// DefaultBaseURL is the EmailJS REST endpoint for template sends.
const DefaultBaseURL = "https://api.emailjs.com/api/v1.0/email/send"

// Message describes one template send: which configured service and
// template to use, the public key identifying the account, and the
// named parameters substituted into the template's placeholders.
type Message struct {
	ServiceID  string
	TemplateID string
	UserID     string
	Params     map[string]string
}

// APIError is a rejected send. StatusCode and Text carry the provider's
// HTTP status and raw response body so callers can classify failures
// (e.g. 422 "recipients address is empty" for an unbound template recipient).
type APIError struct {
	StatusCode int
	Text       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("emailjs: status %d: %s", e.StatusCode, e.Text)
}

// Client defines the interface for dispatching template emails.
// Implementations can be swapped between a stub (for dev/testing)
// and the real EmailJS API client.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// APIClient talks to the EmailJS REST API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client against the public EmailJS endpoint.
// Accepts an optional http.Client for custom timeouts or transport settings.
func NewAPIClient(httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{
		baseURL:    DefaultBaseURL,
		httpClient: httpClient,
	}
}

// Send posts the message as JSON. Any non-200 response is returned as an
// *APIError carrying the status code and raw body text.
func (c *APIClient) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(map[string]any{
		"service_id":      msg.ServiceID,
		"template_id":     msg.TemplateID,
		"user_id":         msg.UserID,
		"template_params": msg.Params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode send payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Text: string(body)}
	}

	return nil
}

// StubClient simulates sending emails by logging them.
// Used for development when no EmailJS credentials are configured.
type StubClient struct{}

// NewStubClient creates an email client that logs instead of sending.
func NewStubClient() *StubClient {
	return &StubClient{}
}

func (c *StubClient) Send(_ context.Context, msg Message) error {
	slog.Info("sending template email (stub)",
		"service", msg.ServiceID,
		"template", msg.TemplateID,
		"params", len(msg.Params),
	)
	return nil
}

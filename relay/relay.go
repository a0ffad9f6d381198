// Package relay dispatches templated notification emails through the
// hosted email-relay service used by the contact form's client path.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/digiserv/backend/subm"
)

const defaultBaseURL = "https://api.emailjs.com"

// Config holds the three required relay credentials. The service is
// treated as unconfigured while any of them is blank or still carries
// the placeholder value from the sample env file.
type Config struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	BaseURL    string // defaults to the hosted service
}

func (c Config) Configured() bool {
	set := func(v string, placeholder string) bool {
		return v != "" && v != placeholder
	}
	return set(c.ServiceID, "your_service_id") &&
		set(c.TemplateID, "your_template_id") &&
		set(c.PublicKey, "your_public_key")
}

type Client struct {
	cfg    Config
	client *http.Client
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// TemplateParams builds the flat parameter map the notification
// template expects.
func TemplateParams(f subm.Form) map[string]string {
	phone := f.Phone
	if phone == "" {
		phone = "Not provided"
	}
	subject := f.Problem
	if subject == "" {
		subject = "General Inquiry"
	}
	return map[string]string{
		"from_name":  f.Name,
		"from_email": f.Email,
		"phone":      phone,
		"subject":    subject,
		"message":    f.Message,
	}
}

// Send dispatches the notification template for one contact form.
func (c *Client) Send(ctx context.Context, f subm.Form) error {
	return c.SendTemplate(ctx, TemplateParams(f))
}

// SendTemplate posts one templated send request. Any non-2xx response
// is an error carrying the relay's response body.
func (c *Client) SendTemplate(ctx context.Context, params map[string]string) error {
	payload := struct {
		ServiceID      string            `json:"service_id"`
		TemplateID     string            `json:"template_id"`
		UserID         string            `json:"user_id"`
		TemplateParams map[string]string `json:"template_params"`
	}{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode relay request: %w", err)
	}

	url := c.cfg.BaseURL + "/api/v1.0/email/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach email relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email relay rejected request: %s: %s",
			resp.Status, string(respBody))
	}
	return nil
}

// Package mailer sends transactional email through the Brevo HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultAPIURL = "https://api.brevo.com/v3/smtp/email"

// Mailer is a thin client for Brevo's transactional email endpoint. An empty
// API key disables sending; Send then returns ErrNotConfigured so callers can
// degrade gracefully in environments without email.
type Mailer struct {
	apiKey      string
	senderName  string
	senderEmail string
	apiURL      string
	client      *http.Client
}

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = fmt.Errorf("mailer: no API key configured")

// NewMailer creates a Brevo mailer. senderName and senderEmail identify the
// business in the From header of every message.
func NewMailer(apiKey, senderName, senderEmail string) *Mailer {
	return &Mailer{
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		apiURL:      defaultAPIURL,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// WithEndpoint overrides the API URL. Used by tests.
func (m *Mailer) WithEndpoint(url string) *Mailer {
	m.apiURL = url
	return m
}

type emailAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendRequest struct {
	Sender      emailAddress   `json:"sender"`
	To          []emailAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

// Send delivers one HTML email to a single recipient.
func (m *Mailer) Send(ctx context.Context, toEmail, toName, subject, htmlBody string) error {
	if m.apiKey == "" {
		return ErrNotConfigured
	}

	payload := sendRequest{
		Sender:      emailAddress{Name: m.senderName, Email: m.senderEmail},
		To:          []emailAddress{{Name: toName, Email: toEmail}},
		Subject:     subject,
		HTMLContent: htmlBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("email API returned status %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}

// SendPasswordReset emails a password reset link to the given recipient.
func (m *Mailer) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string, expiry time.Duration) error {
	subject := "Password Reset Request"
	htmlBody := fmt.Sprintf(`<html><body>
<h2>Password Reset</h2>
<p>Hello %s,</p>
<p>We received a request to reset your password. Click the link below to choose a new one:</p>
<p><a href="%s">Reset Password</a></p>
<p>This link expires in %d minutes. If you did not request a reset, you can safely ignore this email.</p>
<p>Regards,<br>%s</p>
</body></html>`, toName, resetURL, int(expiry.Minutes()), m.senderName)

	return m.Send(ctx, toEmail, toName, subject, htmlBody)
}

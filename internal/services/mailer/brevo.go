package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"mynunny/internal/config"
)

const brevoAPIURL = "https://api.brevo.com/v3/smtp/email"

// BrevoMailer sends transactional email through the Brevo REST API.
type BrevoMailer struct {
	apiKey       string
	senderEmail  string
	senderName   string
	contactEmail string
	client       *http.Client
}

func NewBrevoMailer(cfg *config.Config) *BrevoMailer {
	return &BrevoMailer{
		apiKey:       cfg.BrevoAPIKey,
		senderEmail:  cfg.SenderEmail,
		senderName:   cfg.SenderName,
		contactEmail: cfg.ContactEmail,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

type brevoParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoPayload struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
	TextContent string       `json:"textContent,omitempty"`
}

func (m *BrevoMailer) send(ctx context.Context, to, subject, htmlContent, textContent string) error {
	if m.apiKey == "" {
		return errors.New("BREVO_API_KEY is not configured")
	}

	body, err := json.Marshal(brevoPayload{
		Sender:      brevoParty{Name: m.senderName, Email: m.senderEmail},
		To:          []brevoParty{{Email: to}},
		Subject:     subject,
		HTMLContent: htmlContent,
		TextContent: textContent,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoAPIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("brevo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("brevo API returned status %d", resp.StatusCode)
	}
	return nil
}

func (m *BrevoMailer) SendOTP(ctx context.Context, email, code string) error {
	html := fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2>Email Verification</h2>
      <p>Thank you for registering with MyNunny. Please use the following OTP to verify your email address:</p>
      <div style="background-color: #f4f4f4; padding: 20px; text-align: center; margin: 20px 0;">
        <h1 style="font-size: 32px; margin: 0; letter-spacing: 5px;">%s</h1>
      </div>
      <p>This OTP will expire in 2 minutes.</p>
      <p>If you didn't request this verification, please ignore this email.</p>
    </div>`, code)
	text := fmt.Sprintf("MyNunny Email Verification\n\nYour OTP is: %s\n\nThis OTP will expire in 2 minutes.", code)

	return m.send(ctx, email, "MyNunny - Email Verification OTP", html, text)
}

var statusSubjects = map[string]string{
	"APPROVED":   "Your MyNunny account has been approved",
	"REJECTED":   "Your MyNunny account has been rejected",
	"SUSPENDED":  "Your MyNunny account has been suspended",
	"REINSTATED": "Your MyNunny account has been reinstated",
}

var statusMessages = map[string]string{
	"APPROVED":   "Your nunny profile has been approved. You can now access client requests and start engaging.",
	"REJECTED":   "We appreciate your interest. Unfortunately, your nunny profile has been rejected at this time.",
	"SUSPENDED":  "Your nunny account has been suspended due to a policy violation. If you believe this is an error, please contact support.",
	"REINSTATED": "Your account has been reinstated. You can come back and continue with your application.",
}

func (m *BrevoMailer) SendStatusChange(ctx context.Context, email, fullName, status string) error {
	subject, ok := statusSubjects[status]
	if !ok {
		return fmt.Errorf("unknown status %q", status)
	}

	html := fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 640px; margin: 0 auto; padding: 24px;">
      <p>Hi %s,</p>
      <p>%s</p>
      <div style="margin: 16px 0; padding: 12px 16px; border: 1px solid #ddd; border-radius: 12px;">
        <strong>Status:</strong> %s
      </div>
      <p>Best regards,<br/>MyNunny Team</p>
    </div>`, firstName(fullName), statusMessages[status], status)

	return m.send(ctx, email, subject, html, statusMessages[status])
}

func (m *BrevoMailer) SendPasswordReset(ctx context.Context, email, link string) error {
	html := fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2>Password reset request</h2>
      <p>We received a request to reset your password. Click the button below to proceed. This link will expire in 1 hour.</p>
      <p style="margin: 24px 0;"><a href="%s">Reset password</a></p>
      <p>If you didn't request this, you can safely ignore this email.</p>
    </div>`, link)

	return m.send(ctx, email, "Reset your MyNunny password", html, "Reset your password: "+link)
}

func (m *BrevoMailer) SendContact(ctx context.Context, name, fromEmail, message string) error {
	html := fmt.Sprintf(`
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <p>%s</p>`,
		template.HTMLEscapeString(name),
		template.HTMLEscapeString(fromEmail),
		template.HTMLEscapeString(message))
	text := fmt.Sprintf("Contact Form Message\n\nName: %s\nEmail: %s\n\nMessage:\n%s", name, fromEmail, message)

	return m.send(ctx, m.contactEmail, fmt.Sprintf("Contact Form Message from %s", name), html, text)
}

func firstName(fullName string) string {
	for i, r := range fullName {
		if r == ' ' {
			return fullName[:i]
		}
	}
	return fullName
}

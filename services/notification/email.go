// File: services/notification/email.go
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mindhaven/config"
	"mindhaven/models"
	"mindhaven/utils"

	"go.uber.org/zap"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoService sends transactional email through the Brevo REST API.
type BrevoService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	Client      *http.Client
}

// NewBrevoService builds the email sender from configuration. Returns nil if
// the API key is missing, which callers treat as "notifications disabled".
func NewBrevoService() *BrevoService {
	cfg := config.AppConfig
	if cfg.BrevoAPIKey == "" {
		utils.GetLogger().Warn("email service not configured, booking confirmations disabled")
		return nil
	}
	return &BrevoService{
		APIKey:      cfg.BrevoAPIKey,
		SenderEmail: cfg.EmailSender,
		SenderName:  cfg.EmailSenderName,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// SendBookingConfirmation emails the teen their session time and join hint.
func (s *BrevoService) SendBookingConfirmation(ctx context.Context, user *models.User, therapist *models.Therapist, appointment *models.Appointment) error {
	subject := "Your session is booked"
	body := fmt.Sprintf(
		"<h1>Session confirmed</h1><p>Hi %s,</p><p>Your session with %s starts at <b>%s</b> and runs for %d minutes. You can join the room five minutes before it starts.</p>",
		user.Alias,
		therapist.Name,
		appointment.Date.Format(time.Kitchen),
		appointment.Duration,
	)
	return s.send(ctx, user.Email, user.Alias, subject, body)
}

func (s *BrevoService) send(ctx context.Context, toEmail, toName, subject, htmlContent string) error {
	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	payload := brevoPayload{
		Sender:      map[string]string{"email": s.SenderEmail, "name": s.SenderName},
		To:          []map[string]string{{"email": toEmail, "name": toName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(respBody))
	}

	utils.GetLogger().Debug("email sent", zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}

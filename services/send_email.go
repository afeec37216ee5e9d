package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/folioverse-backend/config"
	"github.com/rpupo63/folioverse-backend/errs"
	"github.com/rpupo63/folioverse-backend/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ResendNotifier emails contact messages to the site owner through the
// Resend API
type ResendNotifier struct {
	APIKey     string
	From       string
	Recipients []string
	Endpoint   string
	Client     *http.Client
}

// NewResendNotifier reads RESEND_API_KEY, RESEND_FROM_EMAIL and
// CONTACT_RECIPIENTS. ok is false when the API key is not configured.
func NewResendNotifier(cfg map[string]string) (n *ResendNotifier, ok bool, err error) {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return nil, false, nil
	}

	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	if fromEmail == "" {
		return nil, false, errs.NewConfigInvalidError("RESEND_FROM_EMAIL", "required when RESEND_API_KEY is set")
	}

	recipients := config.GetList(cfg, "CONTACT_RECIPIENTS")
	if len(recipients) == 0 {
		return nil, false, errs.NewConfigInvalidError("CONTACT_RECIPIENTS", "at least one recipient is required when RESEND_API_KEY is set")
	}

	return &ResendNotifier{
		APIKey:     apiKey,
		From:       fromEmail,
		Recipients: recipients,
		Endpoint:   resendEndpoint,
		Client:     &http.Client{Timeout: 15 * time.Second},
	}, true, nil
}

func (n *ResendNotifier) Notify(ctx context.Context, msg models.ContactMessage) error {
	payload := ResendEmailRequest{
		From:    n.From,
		To:      n.Recipients,
		Subject: fmt.Sprintf("Portfolio contact from %s", msg.Name),
		Html:    contactEmailHTML(msg),
		Text:    contactEmailText(msg),
		ReplyTo: msg.Email,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return errs.NewInternalErrorWithCause("marshal email payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.Endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return errs.NewInternalErrorWithCause("create Resend API request", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errs.NewRequestTimeoutError("contact delivery", err)
		}
		return errs.NewDeliveryError("resend", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewDeliveryError("resend", fmt.Errorf("failed to read Resend API response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return errs.NewDeliveryError("resend", fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message))
		}
		return errs.NewDeliveryError("resend", fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes)))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Str("contactId", msg.ID.String()).Msg("Successfully sent email via Resend")
	}

	return nil
}

func contactEmailHTML(msg models.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>From:</strong> %s &lt;%s&gt;</p>", html.EscapeString(msg.Name), html.EscapeString(msg.Email))
	fmt.Fprintf(&b, "<p><strong>Received:</strong> %s</p>", msg.SubmittedAt.Format(time.RFC1123))
	for _, para := range strings.Split(msg.Message, "\n") {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(para))
	}
	return b.String()
}

func contactEmailText(msg models.ContactMessage) string {
	return fmt.Sprintf("From: %s <%s>\nReceived: %s\n\n%s\n",
		msg.Name, msg.Email, msg.SubmittedAt.Format(time.RFC1123), msg.Message)
}

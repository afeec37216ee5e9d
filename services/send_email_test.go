package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rpupo63/folioverse-backend/errs"
	"github.com/rpupo63/folioverse-backend/models"
)

func testMessage() models.ContactMessage {
	return models.ContactMessage{
		ID:          uuid.MustParse("6f1c1a52-6c8e-4c43-9a0c-0f3a4cf5f1a1"),
		Name:        "Ada <script>",
		Email:       "ada@example.com",
		Message:     "line one\nline two",
		SubmittedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestResendNotifierSends(t *testing.T) {
	var got ResendEmailRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer server.Close()

	n := &ResendNotifier{
		APIKey:     "re_test",
		From:       "Site <site@example.com>",
		Recipients: []string{"me@example.com"},
		Endpoint:   server.URL,
		Client:     server.Client(),
	}
	if err := n.Notify(context.Background(), testMessage()); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	if auth != "Bearer re_test" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.ReplyTo != "ada@example.com" || len(got.To) != 1 || got.To[0] != "me@example.com" {
		t.Errorf("request = %+v", got)
	}
	if strings.Contains(got.Html, "<script>") {
		t.Errorf("HTML body not escaped: %s", got.Html)
	}
	if !strings.Contains(got.Html, "<p>line two</p>") {
		t.Errorf("HTML body missing paragraphs: %s", got.Html)
	}
}

func TestResendNotifierAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	n := &ResendNotifier{APIKey: "k", From: "f", Recipients: []string{"r"}, Endpoint: server.URL, Client: server.Client()}
	err := n.Notify(context.Background(), testMessage())
	if !errs.IsDeliveryFailedError(err) {
		t.Fatalf("Notify() error = %v, want delivery failure", err)
	}

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		t.Fatalf("Notify() error %T is not an ApiErr", err)
	}
	if !strings.Contains(apiErr.GetFullError(), "invalid from address") {
		t.Errorf("GetFullError() = %q, want API message", apiErr.GetFullError())
	}
}

func TestNewResendNotifierConfig(t *testing.T) {
	if _, ok, err := NewResendNotifier(map[string]string{}); ok || err != nil {
		t.Errorf("unconfigured: ok = %v, err = %v", ok, err)
	}

	_, _, err := NewResendNotifier(map[string]string{"RESEND_API_KEY": "k", "RESEND_FROM_EMAIL": "f"})
	if !errs.IsConfigInvalidError(err) {
		t.Errorf("missing recipients error = %v", err)
	}

	n, ok, err := NewResendNotifier(map[string]string{
		"RESEND_API_KEY":     "k",
		"RESEND_FROM_EMAIL":  "f",
		"CONTACT_RECIPIENTS": "a@example.com, b@example.com",
	})
	if err != nil || !ok {
		t.Fatalf("configured: ok = %v, err = %v", ok, err)
	}
	if len(n.Recipients) != 2 || n.Endpoint != resendEndpoint {
		t.Errorf("notifier = %+v", n)
	}
}

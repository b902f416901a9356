package mailer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/utils/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var gotAPIKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	m := mailer.NewMailer("test-key", "Garuda Electricals", "noreply@garuda.example").WithEndpoint(srv.URL)
	err := m.Send(context.Background(), "ravi@example.com", "Ravi", "Hello", "<p>Hi</p>")
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "Hello", gotBody["subject"])
	sender := gotBody["sender"].(map[string]any)
	assert.Equal(t, "noreply@garuda.example", sender["email"])
}

func TestSend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid sender"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	m := mailer.NewMailer("test-key", "Garuda Electricals", "noreply@garuda.example").WithEndpoint(srv.URL)
	err := m.Send(context.Background(), "ravi@example.com", "Ravi", "Hello", "<p>Hi</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestSend_NotConfigured(t *testing.T) {
	m := mailer.NewMailer("", "Garuda Electricals", "noreply@garuda.example")
	err := m.Send(context.Background(), "ravi@example.com", "Ravi", "Hello", "<p>Hi</p>")
	assert.ErrorIs(t, err, mailer.ErrNotConfigured)
}

func TestSendPasswordReset_MentionsExpiry(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	m := mailer.NewMailer("test-key", "Garuda Electricals", "noreply@garuda.example").WithEndpoint(srv.URL)
	err := m.SendPasswordReset(context.Background(), "ravi@example.com", "Ravi", "https://app.example/reset?token=abc", 30*time.Minute)
	require.NoError(t, err)

	html := gotBody["htmlContent"].(string)
	assert.Contains(t, html, "https://app.example/reset?token=abc")
	assert.Contains(t, html, "30 minutes")
}

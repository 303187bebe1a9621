package notify_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soft-challenge/soft75/pkg/notify"
)

func TestWebhookNotifier_Send(t *testing.T) {
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = body
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("X-Signature-256"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(srv.URL, "")
	assert.Equal(t, "webhook", n.Name())

	err := n.Send(context.Background(), notify.Event{
		MilestonePct: 50,
		ProgressPct:  52,
		Day:          38,
		Habit:        "workout",
		Message:      "halfway there",
	})
	require.NoError(t, err)

	var payload struct {
		Event string       `json:"event"`
		Data  notify.Event `json:"data"`
	}
	require.NoError(t, json.Unmarshal(received, &payload))
	assert.Equal(t, "milestone", payload.Event)
	assert.Equal(t, 50, payload.Data.MilestonePct)
	assert.Equal(t, 52, payload.Data.ProgressPct)
	assert.Equal(t, 38, payload.Data.Day)
	assert.Equal(t, "workout", payload.Data.Habit)
}

func TestWebhookNotifier_Signature(t *testing.T) {
	const secret = "hush"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		want := "sha256=" + hex.EncodeToString(mac.Sum(nil))
		assert.Equal(t, want, r.Header.Get("X-Signature-256"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(srv.URL, secret)
	err := n.Send(context.Background(), notify.Event{MilestonePct: 25, ProgressPct: 25})
	require.NoError(t, err)
}

func TestWebhookNotifier_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(srv.URL, "")
	err := n.Send(context.Background(), notify.Event{MilestonePct: 100, ProgressPct: 100})
	assert.Error(t, err)
}

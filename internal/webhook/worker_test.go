package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/wearable_alerts/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *AlertWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	if cfg.WebhookTimeout == 0 {
		cfg.WebhookTimeout = time.Second
	}
	return NewAlertWorker(nil, logger, cfg)
}

func TestDeliver_SignsPayload(t *testing.T) {
	payload := `{"type":"SOS","alertType":"Collision","userId":"u1"}`
	var gotBody, gotSignature, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(SignatureHeader)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookSecret: "s3cret"})

	err := worker.deliver(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestDeliver_NoSecretNoSignature(t *testing.T) {
	var hasSignature bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasSignature = r.Header[SignatureHeader]
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{WebhookURL: srv.URL})

	require.NoError(t, worker.deliver(context.Background(), `{}`))
	assert.False(t, hasSignature)
}

func TestDeliver_NonSuccessStatusIsSingleAttempt(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{WebhookURL: srv.URL})

	err := worker.deliver(context.Background(), `{}`)

	require.Error(t, err)
	assert.ErrorContains(t, err, "502")
	assert.Equal(t, 1, calls)
}

func TestDeliver_SkipsWithoutURL(t *testing.T) {
	worker := newTestWorker(&config.Config{})

	assert.ErrorIs(t, worker.deliver(context.Background(), `{}`), ErrWebhookNotConfigured)
}

func TestHandle_SkippedDeliveryIsNotLoggedAsDelivered(t *testing.T) {
	logs := &bytes.Buffer{}
	worker := newTestWorker(&config.Config{})
	worker.logger.SetOutput(logs)
	worker.logger.SetLevel(logrus.DebugLevel)

	worker.handle(context.Background(), `{"type":"SOS","alertType":"Collision","userId":"u1"}`)

	assert.Contains(t, logs.String(), "Skipping alert delivery")
	assert.NotContains(t, logs.String(), "delivered successfully")
}

func TestHandle_LogsSuccessfulDelivery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	logs := &bytes.Buffer{}
	worker := newTestWorker(&config.Config{WebhookURL: srv.URL})
	worker.logger.SetOutput(logs)

	worker.handle(context.Background(), `{"type":"SOS","alertType":"Collision","userId":"u1"}`)

	assert.Contains(t, logs.String(), "Alert webhook delivered successfully.")
}

func TestGenerateHMACSHA256(t *testing.T) {
	assert.Equal(t, "5d98b45c90a207fa998ce639fea6f02ecc8cc3f36fef81d694fb856b4d0a28ca", generateHMACSHA256("payload", "key"))
	assert.NotEqual(t, generateHMACSHA256("payload", "key"), generateHMACSHA256("payload", "other"))
}

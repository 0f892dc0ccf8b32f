package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shenikar/wearable_alerts/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestKafkaNotifier_SendNotification(t *testing.T) {
	writer := &fakeWriter{}
	notifier := NewKafkaNotifier(writer, newTestLogger())
	sentAt := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	notifier.now = func() time.Time { return sentAt }
	alert := &models.AlertRecord{Type: models.CategorySOS, AlertType: "Collision", UserID: "u1"}

	err := notifier.SendNotification(context.Background(), alert, "u1-phone", "Severe collision detected!")

	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, []byte("u1-phone"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "category", msg.Headers[0].Key)
	assert.Equal(t, []byte("SOS"), msg.Headers[0].Value)

	assert.JSONEq(t, `{
		"target": "u1-phone",
		"message": "Severe collision detected!",
		"user_id": "u1",
		"category": "SOS",
		"alert_type": "Collision",
		"sent_at": "2024-03-05T14:07:09Z"
	}`, string(msg.Value))

	var got Notification
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, Notification{
		Target:    "u1-phone",
		Message:   "Severe collision detected!",
		UserID:    "u1",
		Category:  models.CategorySOS,
		AlertType: "Collision",
		SentAt:    sentAt,
	}, got)
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	writerErr := errors.New("leader not available")
	notifier := NewKafkaNotifier(&fakeWriter{err: writerErr}, newTestLogger())

	err := notifier.SendNotification(context.Background(), &models.AlertRecord{}, "t", "m")

	require.Error(t, err)
	assert.ErrorIs(t, err, writerErr)
}

func TestLogNotifier_SendNotification(t *testing.T) {
	logs := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(logs)

	err := NewLogNotifier(logger).SendNotification(context.Background(), &models.AlertRecord{UserID: "u1"}, "u1-phone", "m")

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Sending notification to u1-phone: m")
}

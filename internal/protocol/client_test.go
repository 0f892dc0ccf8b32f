package protocol

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/wearable_alerts/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewClient(srv.URL, 2*time.Second, logger)
}

func TestFetchActions_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/protocolActions", r.URL.Path)
		assert.Equal(t, "u 1&x", r.URL.Query().Get("userId"))
		assert.Equal(t, "Non-Critical", r.URL.Query().Get("protocolType"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"actionType":"sendNotification","target":"u1-phone","message":"m"},
			{"actionType":"logEvent","eventName":"e","details":{"zone":"A"}},
			{"actionType":"triggerDeviceAction","deviceName":"band","command":"vibrate"}
		]`)
	})

	actions, err := client.FetchActions(context.Background(), "u 1&x", models.CategoryNonCritical)

	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, models.ProtocolAction{ActionType: models.ActionSendNotification, Target: "u1-phone", Message: "m"}, actions[0])
	assert.Equal(t, "e", actions[1].EventName)
	assert.Equal(t, map[string]any{"zone": "A"}, actions[1].Details)
	assert.Equal(t, models.ActionTriggerDeviceAction, actions[2].ActionType)
	assert.Equal(t, "band", actions[2].DeviceName)
	assert.Equal(t, "vibrate", actions[2].Command)
}

func TestFetchActions_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	})

	actions, err := client.FetchActions(context.Background(), "u1", models.CategorySOS)

	require.Error(t, err)
	assert.NotNil(t, actions)
	assert.Empty(t, actions)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
}

func TestFetchActions_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	client := NewClient(url, time.Second, logger)

	actions, err := client.FetchActions(context.Background(), "u1", models.CategorySOS)

	require.Error(t, err)
	assert.NotNil(t, actions)
	assert.Empty(t, actions)
}

func TestFetchActions_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"actionType":"sendNotification"}`)
	})

	actions, err := client.FetchActions(context.Background(), "u1", models.CategorySOS)

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to decode protocol actions")
	assert.Empty(t, actions)
}

func TestFetchActions_MalformedItemKeepsSiblings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"actionType":"logEvent","eventName":"a"}, 42, {"actionType":"bogus"}]`)
	})

	actions, err := client.FetchActions(context.Background(), "u1", models.CategorySOS)

	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, models.ActionLogEvent, actions[0].ActionType)
	assert.Empty(t, actions[1].ActionType)
	assert.Equal(t, models.ActionType("bogus"), actions[2].ActionType)
}

func TestFetchActions_WrongFieldTypeKeepsActionType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"actionType":"sendNotification","target":"u1-phone","message":42},
			{"actionType":"triggerDeviceAction","deviceName":"band","command":1},
			{"actionType":7}
		]`)
	})

	actions, err := client.FetchActions(context.Background(), "u1", models.CategorySOS)

	require.NoError(t, err)
	require.Len(t, actions, 3)

	assert.Equal(t, models.ActionSendNotification, actions[0].ActionType)
	assert.Equal(t, "u1-phone", actions[0].Target)
	require.Error(t, actions[0].DecodeErr)
	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, actions[0].DecodeErr, &typeErr)
	assert.Equal(t, "message", typeErr.Field)

	assert.Equal(t, models.ActionTriggerDeviceAction, actions[1].ActionType)
	assert.Equal(t, "band", actions[1].DeviceName)
	assert.Error(t, actions[1].DecodeErr)

	assert.Empty(t, actions[2].ActionType)
	assert.NoError(t, actions[2].DecodeErr)
}

func TestFetchActions_EmptyArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	actions, err := client.FetchActions(context.Background(), "u1", models.CategorySOS)

	require.NoError(t, err)
	assert.NotNil(t, actions)
	assert.Empty(t, actions)
}

func TestFetchActions_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	actions, err := client.FetchActions(ctx, "u1", models.CategorySOS)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, actions)
}

package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shenikar/wearable_alerts/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTimestamp = time.Date(2024, 3, 5, 14, 7, 9, 123000000, time.UTC)

func floatPtr(v float64) *float64 {
	return &v
}

func TestBuildAlertMessage_Collision(t *testing.T) {
	alert, err := BuildAlertMessage(models.CategorySOS, models.SubtypeCollision, "u1", "10.1,20.2", fixedTimestamp,
		models.AlertData{CollisionSeverity: "high"})

	require.NoError(t, err)
	assert.Equal(t, &models.AlertRecord{
		Type:              models.CategorySOS,
		AlertType:         "Collision",
		Subtype:           models.SubtypeCollision,
		UserID:            "u1",
		GPSLocation:       "10.1,20.2",
		Timestamp:         "2024-03-05T14:07:09.123Z",
		Message:           "Severe collision detected!",
		CollisionSeverity: "high",
	}, alert)

	// Набор полей на проводе совпадает с исходным сообщением тревоги
	raw, err := json.Marshal(alert)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "SOS",
		"alertType": "Collision",
		"message": "Severe collision detected!",
		"collisionSeverity": "high",
		"userId": "u1",
		"gpsLocation": "10.1,20.2",
		"timestamp": "2024-03-05T14:07:09.123Z"
	}`, string(raw))
}

func TestBuildAlertMessage_ModuleFailure(t *testing.T) {
	alert, err := BuildAlertMessage(models.CategoryNonCritical, models.SubtypeModuleFailure, "u2", "loc", fixedTimestamp,
		models.AlertData{ModuleName: "GPS"})

	require.NoError(t, err)
	assert.Equal(t, "Module issue detected in GPS.", alert.Message)
	assert.Equal(t, "Module Failure", alert.AlertType)
	assert.Equal(t, "GPS", alert.ModuleName)
	assert.Equal(t, models.CategoryNonCritical, alert.Type)
	assert.Empty(t, alert.CollisionSeverity)
	assert.Nil(t, alert.LastBPM)
}

func TestBuildAlertMessage_HeartBeatAnomaly(t *testing.T) {
	tests := []struct {
		name        string
		data        models.AlertData
		wantMessage string
	}{
		{
			name:        "default message",
			data:        models.AlertData{LastBPM: floatPtr(180), AvgBPM: floatPtr(95.5)},
			wantMessage: "Heart rate anomaly detected.",
		},
		{
			name:        "custom message",
			data:        models.AlertData{Message: "BPM spike", LastBPM: floatPtr(30), AvgBPM: floatPtr(60)},
			wantMessage: "BPM spike",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert, err := BuildAlertMessage(models.CategorySOS, models.SubtypeHeartBeatAnomaly, "u3", "loc", fixedTimestamp, tt.data)

			require.NoError(t, err)
			assert.Equal(t, "Heart Beat Anomaly", alert.AlertType)
			assert.Equal(t, tt.wantMessage, alert.Message)
			assert.Equal(t, tt.data.LastBPM, alert.LastBPM)
			assert.Equal(t, tt.data.AvgBPM, alert.AvgBPM)
			assert.Empty(t, alert.ModuleName)
			assert.Empty(t, alert.CollisionSeverity)
		})
	}
}

func TestBuildAlertMessage_TimestampIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, 3, 5, 17, 7, 9, 0, loc)

	alert, err := BuildAlertMessage(models.CategorySOS, models.SubtypeCollision, "u1", "loc", ts, models.AlertData{})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T14:07:09.000Z", alert.Timestamp)
}

func TestBuildAlertMessage_InvalidSubtype(t *testing.T) {
	alert, err := BuildAlertMessage(models.CategorySOS, "fallDetected", "u1", "loc", fixedTimestamp, models.AlertData{})

	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, ErrInvalidAlertType)
	assert.True(t, IsValidationError(err))
}

func TestBuildAlertMessage_InvalidCategory(t *testing.T) {
	alert, err := BuildAlertMessage("Urgent", models.SubtypeCollision, "u1", "loc", fixedTimestamp, models.AlertData{})

	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

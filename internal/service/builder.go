package service

import (
	"fmt"
	"time"

	"github.com/shenikar/wearable_alerts/internal/models"
)

// TimestampLayout - ISO-8601 UTC с миллисекундами
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const (
	defaultHeartBeatMessage = "Heart rate anomaly detected."
	collisionMessage        = "Severe collision detected!"
)

// BuildAlertMessage собирает сообщение тревоги по подтипу.
// Для неизвестного подтипа или категории возвращает ошибку валидации,
// и вызывающий должен прервать триггер без отправки и запроса протокола.
func BuildAlertMessage(
	category models.AlertCategory,
	subtype models.AlertSubtype,
	userID, gpsLocation string,
	timestamp time.Time,
	data models.AlertData,
) (*models.AlertRecord, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	alert := &models.AlertRecord{
		Type:        category,
		Subtype:     subtype,
		UserID:      userID,
		GPSLocation: gpsLocation,
		Timestamp:   timestamp.UTC().Format(TimestampLayout),
	}

	switch subtype {
	case models.SubtypeHeartBeatAnomaly:
		alert.AlertType = "Heart Beat Anomaly"
		alert.Message = data.Message
		if alert.Message == "" {
			alert.Message = defaultHeartBeatMessage
		}
		alert.LastBPM = data.LastBPM
		alert.AvgBPM = data.AvgBPM

	case models.SubtypeCollision:
		alert.AlertType = "Collision"
		alert.Message = collisionMessage
		alert.CollisionSeverity = data.CollisionSeverity

	case models.SubtypeModuleFailure:
		alert.AlertType = "Module Failure"
		alert.Message = fmt.Sprintf("Module issue detected in %s.", data.ModuleName)
		alert.ModuleName = data.ModuleName

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlertType, subtype)
	}

	return alert, nil
}

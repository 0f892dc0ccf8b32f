package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertHistoryEntry представляет запись об отправленной тревоге
type AlertHistoryEntry struct {
	ID          uuid.UUID     `json:"id"`
	UserID      string        `json:"user_id"`
	Category    AlertCategory `json:"category"`
	AlertType   string        `json:"alert_type"`
	Message     string        `json:"message"`
	GPSLocation string        `json:"gps_location"`
	Payload     []byte        `json:"-"`
	CreatedAt   time.Time     `json:"created_at"`
}

// AlertStats - количество тревог по категориям за окно времени
type AlertStats struct {
	SOSCount         int `json:"sos_count"`
	NonCriticalCount int `json:"non_critical_count"`
}

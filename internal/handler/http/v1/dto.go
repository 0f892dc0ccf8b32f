package v1

import (
	"time"

	"github.com/shenikar/wearable_alerts/internal/models"
)

// TriggerAlertRequest DTO для запуска тревоги
// @Description DTO для запуска тревоги
type TriggerAlertRequest struct {
	Type        string           `json:"type" validate:"required" example:"collision"`
	UserID      string           `json:"user_id" validate:"required,max=255" example:"u1"`
	GPSLocation string           `json:"gps_location" validate:"max=255" example:"10.1,20.2"`
	Timestamp   *time.Time       `json:"timestamp,omitempty"`
	Data        models.AlertData `json:"data"`
}

// DispatchResponse DTO для ответа с итогом отправки тревоги
// @Description DTO для ответа с итогом отправки тревоги
type DispatchResponse struct {
	Alert           *models.AlertRecord `json:"alert"`
	ActionsReceived int                 `json:"actions_received"`
	ActionsExecuted int                 `json:"actions_executed"`
	FetchError      string              `json:"fetch_error,omitempty"`
	ActionErrors    []string            `json:"action_errors,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	SOSCount         int `json:"sos_count"`
	NonCriticalCount int `json:"non_critical_count"`
}

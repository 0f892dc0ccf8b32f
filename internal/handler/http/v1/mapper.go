package v1

import (
	"time"

	"github.com/shenikar/wearable_alerts/internal/models"
)

// requestTimestamp возвращает время из запроса или нулевое время,
// которое сервис заменит текущим
func requestTimestamp(req TriggerAlertRequest) time.Time {
	if req.Timestamp == nil {
		return time.Time{}
	}
	return *req.Timestamp
}

// ResultToDispatchResponse преобразует итог сервиса в DTO для ответа
func ResultToDispatchResponse(result *models.DispatchResult) *DispatchResponse {
	resp := &DispatchResponse{
		Alert:           result.Alert,
		ActionsReceived: result.ActionsReceived,
		ActionsExecuted: result.ActionsExecuted,
	}
	if result.FetchErr != nil {
		resp.FetchError = result.FetchErr.Error()
	}
	for _, err := range result.ActionErrors {
		resp.ActionErrors = append(resp.ActionErrors, err.Error())
	}
	return resp
}

// ModelToStatsResponse преобразует статистику в DTO
func ModelToStatsResponse(stats *models.AlertStats) StatsResponse {
	return StatsResponse{
		SOSCount:         stats.SOSCount,
		NonCriticalCount: stats.NonCriticalCount,
	}
}

package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Точки входа триггеров
	alerts := api.Group("/alerts")
	{
		alerts.POST("/sos", h.triggerSOS)
		alerts.POST("/non-critical", h.triggerNonCritical)
		alerts.GET("/stats", h.getStats)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/wearable_alerts/internal/config"
	"github.com/shenikar/wearable_alerts/internal/models"
	"github.com/shenikar/wearable_alerts/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	alertService service.AlertService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(alertService service.AlertService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		alertService: alertService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

type triggerFunc func(ctx context.Context, subtype models.AlertSubtype, userID, gpsLocation string, timestamp time.Time, data models.AlertData) (*models.DispatchResult, error)

// @Summary Trigger an SOS alert
// @Description Build and send an SOS alert, then execute the protocol actions configured for the user.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body TriggerAlertRequest true "Alert trigger request"
// @Success 202 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or unknown alert type"
// @Failure 500 {object} map[string]string "Alert could not be sent"
// @Router /alerts/sos [post]
func (h *Handler) triggerSOS(c *gin.Context) {
	h.trigger(c, "triggerSOS", h.alertService.TriggerSOS)
}

// @Summary Trigger a non-critical alert
// @Description Build and send a non-critical alert, then execute the protocol actions configured for the user.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body TriggerAlertRequest true "Alert trigger request"
// @Success 202 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or unknown alert type"
// @Failure 500 {object} map[string]string "Alert could not be sent"
// @Router /alerts/non-critical [post]
func (h *Handler) triggerNonCritical(c *gin.Context) {
	h.trigger(c, "triggerNonCritical", h.alertService.TriggerNonCritical)
}

func (h *Handler) trigger(c *gin.Context, method string, fn triggerFunc) {
	var input TriggerAlertRequest
	log := h.logger.WithField("method", method)

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := fn(c.Request.Context(), models.AlertSubtype(input.Type), input.UserID, input.GPSLocation, requestTimestamp(input), input.Data)
	if err != nil {
		if service.IsValidationError(err) {
			log.WithError(err).Warn("Alert rejected by service")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to send alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send alert"})
		return
	}

	c.JSON(http.StatusAccepted, ResultToDispatchResponse(result))
}

// @Summary Get alert statistics
// @Description Get the number of SOS and non-critical alerts sent within the configured time window.
// @Tags Alerts
// @Accept json
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.alertService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

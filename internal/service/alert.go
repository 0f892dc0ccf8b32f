package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shenikar/wearable_alerts/internal/config"
	"github.com/shenikar/wearable_alerts/internal/models"
	"github.com/shenikar/wearable_alerts/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=alert.go -destination=mocks/mock_alert.go -package=mocks
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

// AlertRepository определяет контракт для хранения истории тревог
type AlertRepository interface {
	SaveAlert(ctx context.Context, entry *models.AlertHistoryEntry) error
	GetAlertStats(ctx context.Context, minutes int) (*models.AlertStats, error)
}

// ProtocolFetcher получает действия протокола для пользователя и категории
type ProtocolFetcher interface {
	FetchActions(ctx context.Context, userID string, category models.AlertCategory) ([]models.ProtocolAction, error)
}

// AlertService определяет контракт для точек входа триггеров
type AlertService interface {
	TriggerSOS(ctx context.Context, subtype models.AlertSubtype, userID, gpsLocation string, timestamp time.Time, data models.AlertData) (*models.DispatchResult, error)
	TriggerNonCritical(ctx context.Context, subtype models.AlertSubtype, userID, gpsLocation string, timestamp time.Time, data models.AlertData) (*models.DispatchResult, error)
	GetStats(ctx context.Context) (*models.AlertStats, error)
}

type alertService struct {
	repo      AlertRepository
	publisher webhook.AlertPublisher
	fetcher   ProtocolFetcher
	executor  *ActionExecutor
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewAlertService(
	repo AlertRepository,
	publisher webhook.AlertPublisher,
	fetcher ProtocolFetcher,
	executor *ActionExecutor,
	logger *logrus.Logger,
	cfg *config.Config,
) AlertService {
	return &alertService{
		repo:      repo,
		publisher: publisher,
		fetcher:   fetcher,
		executor:  executor,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// TriggerSOS отправляет SOS тревогу и выполняет связанные действия протокола
func (s *alertService) TriggerSOS(ctx context.Context, subtype models.AlertSubtype, userID, gpsLocation string, timestamp time.Time, data models.AlertData) (*models.DispatchResult, error) {
	return s.trigger(ctx, models.CategorySOS, subtype, userID, gpsLocation, timestamp, data)
}

// TriggerNonCritical отправляет некритичную тревогу и выполняет связанные действия протокола
func (s *alertService) TriggerNonCritical(ctx context.Context, subtype models.AlertSubtype, userID, gpsLocation string, timestamp time.Time, data models.AlertData) (*models.DispatchResult, error) {
	return s.trigger(ctx, models.CategoryNonCritical, subtype, userID, gpsLocation, timestamp, data)
}

func (s *alertService) trigger(
	ctx context.Context,
	category models.AlertCategory,
	subtype models.AlertSubtype,
	userID, gpsLocation string,
	timestamp time.Time,
	data models.AlertData,
) (*models.DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "trigger",
		"category": category,
		"subtype":  subtype,
		"user_id":  userID,
	})

	if timestamp.IsZero() {
		timestamp = s.now()
	}

	alert, err := BuildAlertMessage(category, subtype, userID, gpsLocation, timestamp, data)
	if err != nil {
		log.WithError(err).Warn("Rejected alert trigger")
		return nil, err
	}

	result := &models.DispatchResult{Alert: alert}

	if err := s.publisher.Publish(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to publish alert")
		return result, fmt.Errorf("service: could not send alert: %w", err)
	}
	log.Info("Alert sent")

	s.recordHistory(ctx, log, alert)

	actions, err := s.fetcher.FetchActions(ctx, userID, category)
	if err != nil {
		log.WithError(err).Error("Failed to fetch protocol actions, continuing without actions")
		result.FetchErr = err
		actions = nil
	}
	result.ActionsReceived = len(actions)

	report := s.executor.Execute(ctx, alert, userID, actions)
	result.ActionsExecuted = report.Executed
	result.ActionErrors = report.Errors

	log.WithFields(logrus.Fields{
		"actions_received": result.ActionsReceived,
		"actions_executed": result.ActionsExecuted,
		"action_errors":    len(result.ActionErrors),
	}).Info("Protocol actions processed")

	return result, nil
}

// recordHistory сохраняет тревогу в истории. Ошибка только логируется.
func (s *alertService) recordHistory(ctx context.Context, log *logrus.Entry, alert *models.AlertRecord) {
	payload, err := json.Marshal(alert)
	if err != nil {
		log.WithError(err).Warn("Failed to marshal alert for history")
		return
	}

	entry := &models.AlertHistoryEntry{
		UserID:      alert.UserID,
		Category:    alert.Type,
		AlertType:   alert.AlertType,
		Message:     alert.Message,
		GPSLocation: alert.GPSLocation,
		Payload:     payload,
	}
	if err := s.repo.SaveAlert(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to save alert history")
	}
}

// GetStats возвращает количество тревог по категориям за настроенное окно
func (s *alertService) GetStats(ctx context.Context) (*models.AlertStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "GetStats",
		"minutes": s.cfg.StatsTimeWindowMinutes,
	})
	log.Info("Fetching alert stats")

	stats, err := s.repo.GetAlertStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get alert stats from repository")
		return nil, fmt.Errorf("service: could not get alert stats: %w", err)
	}
	return stats, nil
}

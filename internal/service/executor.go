package service

import (
	"context"

	"github.com/shenikar/wearable_alerts/internal/models"
	"github.com/sirupsen/logrus"
)

// Notifier отправляет уведомление адресату
type Notifier interface {
	SendNotification(ctx context.Context, alert *models.AlertRecord, target, message string) error
}

// DeviceCommander отправляет команду на устройство
type DeviceCommander interface {
	TriggerDeviceAction(ctx context.Context, deviceName, command string) error
}

// ExecutionReport - итог выполнения списка действий
type ExecutionReport struct {
	Executed int
	Errors   []error
}

// ActionExecutor выполняет действия протокола по порядку
type ActionExecutor struct {
	notifier Notifier
	devices  DeviceCommander
	logger   *logrus.Logger
}

func NewActionExecutor(notifier Notifier, devices DeviceCommander, logger *logrus.Logger) *ActionExecutor {
	return &ActionExecutor{
		notifier: notifier,
		devices:  devices,
		logger:   logger,
	}
}

// Execute выполняет действия в полученном порядке. Ошибка отдельного
// действия попадает в отчёт и не останавливает остальные.
func (e *ActionExecutor) Execute(ctx context.Context, alert *models.AlertRecord, userID string, actions []models.ProtocolAction) ExecutionReport {
	var report ExecutionReport

	for i, action := range actions {
		log := e.logger.WithFields(logrus.Fields{
			"service":     "executor",
			"user_id":     userID,
			"alert_type":  alert.AlertType,
			"action_type": action.ActionType,
			"position":    i,
		})
		log.Info("Executing action")

		if action.DecodeErr != nil && action.ActionType.Known() {
			log.WithError(action.DecodeErr).Error("Failed to execute action")
			report.Errors = append(report.Errors, &ActionError{Index: i, ActionType: action.ActionType, Err: action.DecodeErr})
			continue
		}

		var err error
		switch action.ActionType {
		case models.ActionSendNotification:
			err = e.notifier.SendNotification(ctx, alert, action.Target, action.Message)

		case models.ActionLogEvent:
			log.WithFields(logrus.Fields{
				"event_name": action.EventName,
				"details":    action.Details,
			}).Info("Logging event")

		case models.ActionTriggerDeviceAction:
			err = e.devices.TriggerDeviceAction(ctx, action.DeviceName, action.Command)

		default:
			unknown := &UnknownActionError{Index: i, ActionType: action.ActionType}
			log.WithError(unknown).Error("Unknown action type")
			report.Errors = append(report.Errors, unknown)
			continue
		}

		if err != nil {
			log.WithError(err).Error("Failed to execute action")
			report.Errors = append(report.Errors, &ActionError{Index: i, ActionType: action.ActionType, Err: err})
			continue
		}
		report.Executed++
	}

	return report
}

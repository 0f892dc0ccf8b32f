package notify

import (
	"context"

	"github.com/shenikar/wearable_alerts/internal/models"
	"github.com/sirupsen/logrus"
)

// LogNotifier только пишет уведомление в лог
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendNotification(_ context.Context, alert *models.AlertRecord, target, message string) error {
	n.logger.WithFields(logrus.Fields{
		"target":  target,
		"user_id": alert.UserID,
		"sink":    "log",
	}).Infof("Sending notification to %s: %s", target, message)
	return nil
}

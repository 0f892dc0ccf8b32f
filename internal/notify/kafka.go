package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shenikar/wearable_alerts/internal/models"
	"github.com/sirupsen/logrus"
)

// MessageWriter - часть kafka.Writer, которой пользуется нотификатор
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Notification - сообщение, которое уходит в топик уведомлений
type Notification struct {
	Target    string               `json:"target"`
	Message   string               `json:"message"`
	UserID    string               `json:"user_id"`
	Category  models.AlertCategory `json:"category"`
	AlertType string               `json:"alert_type"`
	SentAt    time.Time            `json:"sent_at"`
}

// KafkaNotifier публикует уведомления в Kafka, ключ сообщения - адресат
type KafkaNotifier struct {
	writer MessageWriter
	logger *logrus.Logger
	now    func() time.Time
}

func NewKafkaNotifier(writer MessageWriter, logger *logrus.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		writer: writer,
		logger: logger,
		now:    time.Now,
	}
}

func (n *KafkaNotifier) SendNotification(ctx context.Context, alert *models.AlertRecord, target, message string) error {
	payload, err := json.Marshal(Notification{
		Target:    target,
		Message:   message,
		UserID:    alert.UserID,
		Category:  alert.Type,
		AlertType: alert.AlertType,
		SentAt:    n.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(target),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "category", Value: []byte(alert.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write notification to kafka: %w", err)
	}

	n.logger.WithFields(logrus.Fields{
		"target":  target,
		"user_id": alert.UserID,
	}).Infof("Sending notification to %s: %s", target, message)
	return nil
}

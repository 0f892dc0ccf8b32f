package device

import (
	"context"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// Publisher - часть mqtt.Client, которой пользуется коммандер
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTCommander отправляет команды устройствам в топик <prefix>/<device>
type MQTTCommander struct {
	client      Publisher
	topicPrefix string
	qos         byte
	logger      *logrus.Logger
}

func NewMQTTCommander(client Publisher, topicPrefix string, qos byte, logger *logrus.Logger) *MQTTCommander {
	return &MQTTCommander{
		client:      client,
		topicPrefix: topicPrefix,
		qos:         qos,
		logger:      logger,
	}
}

// Topic возвращает топик команд для устройства
func (c *MQTTCommander) Topic(deviceName string) string {
	return c.topicPrefix + "/" + deviceName
}

func (c *MQTTCommander) TriggerDeviceAction(ctx context.Context, deviceName, command string) error {
	if deviceName == "" {
		return fmt.Errorf("device name is required")
	}

	topic := c.Topic(deviceName)
	token := c.client.Publish(topic, c.qos, false, command)

	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishTimeout):
		return fmt.Errorf("mqtt publish to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish to %s failed: %w", topic, err)
	}

	c.logger.WithFields(logrus.Fields{
		"device": deviceName,
		"topic":  topic,
	}).Infof("Triggering device action: %s - %s", deviceName, command)
	return nil
}

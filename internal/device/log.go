package device

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogCommander только пишет команду в лог
type LogCommander struct {
	logger *logrus.Logger
}

func NewLogCommander(logger *logrus.Logger) *LogCommander {
	return &LogCommander{logger: logger}
}

func (c *LogCommander) TriggerDeviceAction(_ context.Context, deviceName, command string) error {
	c.logger.WithFields(logrus.Fields{
		"device": deviceName,
		"sink":   "log",
	}).Infof("Triggering device action: %s - %s", deviceName, command)
	return nil
}

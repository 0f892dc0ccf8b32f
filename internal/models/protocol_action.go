package models

// ActionType - вид действия протокола
type ActionType string

const (
	ActionSendNotification    ActionType = "sendNotification"
	ActionLogEvent            ActionType = "logEvent"
	ActionTriggerDeviceAction ActionType = "triggerDeviceAction"
)

// Known сообщает, что исполнитель умеет выполнять действие этого вида
func (t ActionType) Known() bool {
	switch t {
	case ActionSendNotification, ActionLogEvent, ActionTriggerDeviceAction:
		return true
	}
	return false
}

// ProtocolAction - инструкция, полученная от сервиса протоколов
type ProtocolAction struct {
	ActionType ActionType `json:"actionType"`

	// sendNotification
	Target  string `json:"target,omitempty"`
	Message string `json:"message,omitempty"`

	// logEvent
	EventName string `json:"eventName,omitempty"`
	Details   any    `json:"details,omitempty"`

	// triggerDeviceAction
	DeviceName string `json:"deviceName,omitempty"`
	Command    string `json:"command,omitempty"`

	// DecodeErr - ошибка разбора полей элемента, вид действия при этом известен
	DecodeErr error `json:"-"`
}

package service

import (
	"errors"
	"fmt"

	"github.com/shenikar/wearable_alerts/internal/models"
)

var (
	// ErrInvalidAlertType возвращается для неизвестного подтипа тревоги
	ErrInvalidAlertType = errors.New("invalid alert type provided")
	// ErrInvalidCategory возвращается для неизвестной категории тревоги
	ErrInvalidCategory = errors.New("invalid alert category provided")
)

// IsValidationError сообщает, что триггер был отклонён до отправки тревоги
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAlertType) || errors.Is(err, ErrInvalidCategory)
}

// UnknownActionError - действие протокола с неизвестным типом
type UnknownActionError struct {
	Index      int
	ActionType models.ActionType
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action type %q at position %d", e.ActionType, e.Index)
}

// ActionError - ошибка стока при выполнении конкретного действия
type ActionError struct {
	Index      int
	ActionType models.ActionType
	Err        error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %s at position %d failed: %v", e.ActionType, e.Index, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

package models

// DispatchResult - типизированный итог одного вызова триггера.
// FetchErr и ActionErrors позволяют вызывающему эскалировать сбои,
// которые сам триггер только логирует.
type DispatchResult struct {
	Alert           *AlertRecord
	ActionsReceived int
	ActionsExecuted int
	FetchErr        error
	ActionErrors    []error
}

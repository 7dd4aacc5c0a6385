package domain

import "context"

// Названия исходящих действий диспетчера.
const (
	ActionSnooze   = "snooze"
	ActionPresence = "presence"
	ActionProfile  = "profile"
)

// ActionOutcome фиксирует исход одного исходящего вызова.
type ActionOutcome struct {
	Action string
	Err    error
}

// DispatchReport — упорядоченный список исходов исходящих вызовов
// одного запроса.
type DispatchReport struct {
	Outcomes []ActionOutcome
}

// Delivered сообщает, дошло ли основное действие — установка статуса.
func (r DispatchReport) Delivered() bool {
	for _, outcome := range r.Outcomes {
		if outcome.Action == ActionProfile {
			return outcome.Err == nil
		}
	}
	return false
}

// Failed возвращает действия, завершившиеся ошибкой.
func (r DispatchReport) Failed() []ActionOutcome {
	var failed []ActionOutcome
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// Translator превращает запись события в команду статуса или отказ.
type Translator interface {
	Translate(record EventRecord) (StatusCommand, error)
}

// Dispatcher выполняет исходящие вызовы команды в заданном порядке.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd StatusCommand) (DispatchReport, error)
}

// PresenceAPI — исходящие вызовы API управления присутствием.
type PresenceAPI interface {
	SetSnooze(ctx context.Context, minutes int) error
	SetPresence(ctx context.Context, presence string) error
	SetProfile(ctx context.Context, update StatusUpdate) error
}

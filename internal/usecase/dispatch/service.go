package dispatch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"calendar-status-bot/internal/domain"
	"calendar-status-bot/internal/infra/metrics"
)

// Service выполняет исходящие вызовы команды статуса в фиксированном
// порядке: snooze, presence, profile. Первые два — best-effort, их сбои
// логируются и фиксируются в отчёте, но не прерывают цепочку. Сбой
// установки статуса — единственный, который поднимается наверх.
type Service struct {
	api domain.PresenceAPI
	log zerolog.Logger
}

var _ domain.Dispatcher = (*Service)(nil)

// NewService создаёт диспетчер.
func NewService(api domain.PresenceAPI, log zerolog.Logger) *Service {
	return &Service{api: api, log: log}
}

// Dispatch выполняет действия команды и возвращает пошаговый отчёт.
func (s *Service) Dispatch(ctx context.Context, cmd domain.StatusCommand) (domain.DispatchReport, error) {
	var report domain.DispatchReport

	if cmd.Snooze {
		err := s.api.SetSnooze(ctx, cmd.SnoozeMinutes)
		report.Outcomes = append(report.Outcomes, domain.ActionOutcome{Action: domain.ActionSnooze, Err: err})
		if err != nil {
			metrics.IncSlackSendError()
			s.log.Warn().Err(err).Int("minutes", cmd.SnoozeMinutes).Msg("не удалось включить snooze, продолжаем")
		}
	}

	if cmd.Away {
		err := s.api.SetPresence(ctx, "away")
		report.Outcomes = append(report.Outcomes, domain.ActionOutcome{Action: domain.ActionPresence, Err: err})
		if err != nil {
			metrics.IncSlackSendError()
			s.log.Warn().Err(err).Msg("не удалось переключить присутствие, продолжаем")
		}
	}

	err := s.api.SetProfile(ctx, domain.StatusUpdate{
		Text:      cmd.Text,
		Emoji:     cmd.Emoji,
		ExpiresAt: cmd.ExpiresAt,
	})
	report.Outcomes = append(report.Outcomes, domain.ActionOutcome{Action: domain.ActionProfile, Err: err})
	if err != nil {
		metrics.IncSlackSendError()
		return report, fmt.Errorf("установка статуса: %w", err)
	}

	s.log.Info().Str("status", cmd.Text).Int64("expires_at", cmd.ExpiresAt).Msg("статус установлен")
	return report, nil
}

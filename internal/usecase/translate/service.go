package translate

import (
	"fmt"
	"time"

	"calendar-status-bot/internal/domain"
)

// eventTimeLayout — формат времени, который присылает IFTTT,
// например "Jun 5, 2024 at 02:30PM".
const eventTimeLayout = "Jan 2, 2006 at 03:04PM"

// Window задаёт рабочее окно автоматизации в часах локального времени.
// События, заканчивающиеся до Open или начинающиеся после Close,
// не транслируются.
type Window struct {
	Open  int
	Close int
}

// Service реализует трансляцию события календаря в команду статуса.
// Чистая функция от записи события: без побочных эффектов и логирования.
type Service struct {
	rules  *domain.RuleTable
	loc    *time.Location
	zone   string
	window Window
}

var _ domain.Translator = (*Service)(nil)

// NewService создаёт транслятор.
func NewService(rules *domain.RuleTable, loc *time.Location, zone string, window Window) *Service {
	return &Service{rules: rules, loc: loc, zone: zone, window: window}
}

// Translate разбирает времена события, проверяет рабочее окно, подбирает
// профиль и собирает команду статуса. Отказ возвращается как *domain.Rejection.
func (s *Service) Translate(record domain.EventRecord) (domain.StatusCommand, error) {
	start, err := time.ParseInLocation(eventTimeLayout, record.Start, s.loc)
	if err != nil {
		return domain.StatusCommand{}, &domain.Rejection{Reason: domain.ReasonMalformedTime, Cause: err}
	}
	end, err := time.ParseInLocation(eventTimeLayout, record.End, s.loc)
	if err != nil {
		return domain.StatusCommand{}, &domain.Rejection{Reason: domain.ReasonMalformedTime, Cause: err}
	}

	if end.Before(start) {
		return domain.StatusCommand{}, &domain.Rejection{Reason: domain.ReasonInvalidRange}
	}

	// Событие, заканчивающееся ровно в час открытия, ещё попадает в окно.
	if end.Hour() < s.window.Open {
		return domain.StatusCommand{}, &domain.Rejection{
			Reason:   domain.ReasonOutsideWindow,
			Boundary: domain.BoundaryOpen,
			Hour:     end.Hour(),
		}
	}
	if start.Hour() > s.window.Close {
		return domain.StatusCommand{}, &domain.Rejection{
			Reason:   domain.ReasonOutsideWindow,
			Boundary: domain.BoundaryClose,
			Hour:     start.Hour(),
		}
	}

	profile, keyword := s.rules.Match(record.Title)
	display := record.Title
	if keyword != "" {
		display = keyword
	}

	zone := record.Timezone
	if zone == "" {
		zone = s.zone
	}

	return domain.StatusCommand{
		Text:           fmt.Sprintf("%s till %s %s", display, end.Format("15:04"), zone),
		Emoji:          profile.Emoji,
		ExpiresAt:      end.Unix(),
		Snooze:         profile.Snooze,
		SnoozeMinutes:  int(end.Sub(start).Minutes()),
		Away:           profile.Away,
		MatchedKeyword: keyword,
	}, nil
}

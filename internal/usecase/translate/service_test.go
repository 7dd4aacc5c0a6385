package translate

import (
	"testing"
	"time"

	"calendar-status-bot/internal/domain"
)

const testZone = "America/New_York"

func newTestService(t *testing.T, window Window) *Service {
	t.Helper()
	loc, err := time.LoadLocation(testZone)
	if err != nil {
		t.Fatalf("не удалось загрузить часовой пояс: %v", err)
	}
	rules := domain.NewRuleTable(domain.DefaultRules(), domain.DefaultProfile(), false)
	return NewService(rules, loc, testZone, window)
}

func TestTranslateFocusTime(t *testing.T) {
	s := newTestService(t, Window{Open: 8, Close: 17})
	cmd, err := s.Translate(domain.EventRecord{
		Title: "Focus Time block",
		Start: "Jun 5, 2024 at 09:00AM",
		End:   "Jun 5, 2024 at 10:00AM",
	})
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if cmd.MatchedKeyword != "Focus Time" {
		t.Fatalf("ожидали ключевое слово Focus Time, получили %q", cmd.MatchedKeyword)
	}
	if cmd.Text != "Focus Time till 10:00 America/New_York" {
		t.Fatalf("неожиданный текст статуса: %q", cmd.Text)
	}
	if !cmd.Snooze || cmd.Away {
		t.Fatalf("ожидали snooze без away, получили %+v", cmd)
	}
	if cmd.SnoozeMinutes != 60 {
		t.Fatalf("ожидали 60 минут, получили %d", cmd.SnoozeMinutes)
	}
	if cmd.Emoji != ":computer:" {
		t.Fatalf("ожидали :computer:, получили %q", cmd.Emoji)
	}
}

func TestTranslateDefaultProfile(t *testing.T) {
	s := newTestService(t, Window{Open: 8, Close: 17})
	cmd, err := s.Translate(domain.EventRecord{
		Title: "Quick sync",
		Start: "Jun 5, 2024 at 11:00AM",
		End:   "Jun 5, 2024 at 11:30AM",
	})
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if cmd.MatchedKeyword != "" {
		t.Fatalf("не ожидали совпадения, получили %q", cmd.MatchedKeyword)
	}
	if cmd.Text != "Quick sync till 11:30 America/New_York" {
		t.Fatalf("неожиданный текст статуса: %q", cmd.Text)
	}
	if !cmd.Snooze || cmd.Away {
		t.Fatalf("профиль по умолчанию: snooze без away, получили %+v", cmd)
	}
	if cmd.SnoozeMinutes != 30 {
		t.Fatalf("ожидали 30 минут, получили %d", cmd.SnoozeMinutes)
	}
}

func TestTranslateExpiresAtEpoch(t *testing.T) {
	// Момент истечения должен совпадать с end в UTC независимо от смещения пояса.
	zones := []string{"America/New_York", "Asia/Tokyo", "UTC"}
	for _, zone := range zones {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			t.Fatalf("не удалось загрузить часовой пояс %s: %v", zone, err)
		}
		rules := domain.NewRuleTable(domain.DefaultRules(), domain.DefaultProfile(), false)
		s := NewService(rules, loc, zone, Window{Open: 0, Close: 23})
		cmd, err := s.Translate(domain.EventRecord{
			Title: "Quick sync",
			Start: "Jun 5, 2024 at 11:00AM",
			End:   "Jun 5, 2024 at 11:30AM",
		})
		if err != nil {
			t.Fatalf("%s: не ожидали ошибку: %v", zone, err)
		}
		want, err := time.ParseInLocation(eventTimeLayout, "Jun 5, 2024 at 11:30AM", loc)
		if err != nil {
			t.Fatalf("%s: %v", zone, err)
		}
		if cmd.ExpiresAt != want.Unix() {
			t.Fatalf("%s: ожидали %d, получили %d", zone, want.Unix(), cmd.ExpiresAt)
		}
	}
}

func TestTranslateTooLate(t *testing.T) {
	s := newTestService(t, Window{Open: 8, Close: 17})
	_, err := s.Translate(domain.EventRecord{
		Title: "Lunch with team",
		Start: "Jun 5, 2024 at 10:00PM",
		End:   "Jun 5, 2024 at 11:00PM",
	})
	rej, ok := domain.AsRejection(err)
	if !ok {
		t.Fatalf("ожидали Rejection, получили %v", err)
	}
	if rej.Reason != domain.ReasonOutsideWindow || rej.Boundary != domain.BoundaryClose {
		t.Fatalf("ожидали outside_window/close, получили %+v", rej)
	}
	if rej.Hour != 22 {
		t.Fatalf("ожидали час 22, получили %d", rej.Hour)
	}
}

func TestTranslateTooEarly(t *testing.T) {
	s := newTestService(t, Window{Open: 8, Close: 17})
	_, err := s.Translate(domain.EventRecord{
		Title: "Morning run",
		Start: "Jun 5, 2024 at 06:00AM",
		End:   "Jun 5, 2024 at 07:00AM",
	})
	rej, ok := domain.AsRejection(err)
	if !ok {
		t.Fatalf("ожидали Rejection, получили %v", err)
	}
	if rej.Reason != domain.ReasonOutsideWindow || rej.Boundary != domain.BoundaryOpen {
		t.Fatalf("ожидали outside_window/open, получили %+v", rej)
	}
	if rej.Hour != 7 {
		t.Fatalf("ожидали час 7, получили %d", rej.Hour)
	}
}

func TestTranslateOpenBoundary(t *testing.T) {
	s := newTestService(t, Window{Open: 8, Close: 17})

	// Конец ровно в час открытия — событие ещё в окне.
	if _, err := s.Translate(domain.EventRecord{
		Title: "Standup",
		Start: "Jun 5, 2024 at 07:30AM",
		End:   "Jun 5, 2024 at 08:00AM",
	}); err != nil {
		t.Fatalf("событие с концом в 08:00 должно пройти: %v", err)
	}

	// Минутой раньше — уже нет.
	_, err := s.Translate(domain.EventRecord{
		Title: "Standup",
		Start: "Jun 5, 2024 at 07:30AM",
		End:   "Jun 5, 2024 at 07:59AM",
	})
	if rej, ok := domain.AsRejection(err); !ok || rej.Reason != domain.ReasonOutsideWindow {
		t.Fatalf("событие с концом в 07:59 должно быть отклонено, получили %v", err)
	}
}

func TestTranslateMalformedStart(t *testing.T) {
	s := newTestService(t, Window{Open: 8, Close: 17})
	_, err := s.Translate(domain.EventRecord{
		Title: "Broken",
		Start: "",
		End:   "Jun 5, 2024 at 10:00AM",
	})
	rej, ok := domain.AsRejection(err)
	if !ok || rej.Reason != domain.ReasonMalformedTime {
		t.Fatalf("ожидали malformed_time, получили %v", err)
	}
}

func TestTranslateInvalidRange(t *testing.T) {
	s := newTestService(t, Window{Open: 8, Close: 17})
	_, err := s.Translate(domain.EventRecord{
		Title: "Backwards",
		Start: "Jun 5, 2024 at 11:00AM",
		End:   "Jun 5, 2024 at 10:00AM",
	})
	rej, ok := domain.AsRejection(err)
	if !ok || rej.Reason != domain.ReasonInvalidRange {
		t.Fatalf("ожидали invalid_range, получили %v", err)
	}
}

func TestTranslateZeroLengthEvent(t *testing.T) {
	s := newTestService(t, Window{Open: 8, Close: 17})
	cmd, err := s.Translate(domain.EventRecord{
		Title: "Ping",
		Start: "Jun 5, 2024 at 11:00AM",
		End:   "Jun 5, 2024 at 11:00AM",
	})
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if cmd.SnoozeMinutes != 0 {
		t.Fatalf("ожидали 0 минут, получили %d", cmd.SnoozeMinutes)
	}
}

package domain

// StatusProfile описывает применяемый профиль статуса: эмодзи,
// флаг отключения уведомлений и флаг "отошёл".
type StatusProfile struct {
	Emoji  string
	Snooze bool
	Away   bool
}

// Rule связывает ключевое слово заголовка события с профилем статуса.
type Rule struct {
	Keyword string
	Profile StatusProfile
}

// EventRecord — сырая запись события календаря из вебхука.
type EventRecord struct {
	Title    string
	Start    string
	End      string
	Timezone string
}

// StatusCommand — полностью вычисленная команда обновления присутствия.
// Живёт один запрос: собирается транслятором и сразу отдаётся диспетчеру.
type StatusCommand struct {
	Text           string
	Emoji          string
	ExpiresAt      int64
	Snooze         bool
	SnoozeMinutes  int
	Away           bool
	MatchedKeyword string
}

// StatusUpdate — полезная нагрузка вызова users.profile.set.
type StatusUpdate struct {
	Text      string `json:"status_text"`
	Emoji     string `json:"status_emoji"`
	ExpiresAt int64  `json:"status_expiration"`
}

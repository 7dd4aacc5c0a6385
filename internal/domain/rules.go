package domain

import "strings"

// RuleTable — упорядоченный набор правил сопоставления заголовков плюс
// профиль по умолчанию. Собирается один раз при старте процесса и дальше
// не изменяется, поэтому безопасно разделяется между запросами.
type RuleTable struct {
	rules          []Rule
	defaultProfile StatusProfile
	foldCase       bool
}

// NewRuleTable создаёт таблицу правил. Порядок rules значим: при
// нескольких совпадениях побеждает первое. foldCase включает
// сопоставление без учёта регистра.
func NewRuleTable(rules []Rule, defaultProfile StatusProfile, foldCase bool) *RuleTable {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &RuleTable{rules: copied, defaultProfile: defaultProfile, foldCase: foldCase}
}

// Match возвращает профиль первого правила, чьё ключевое слово является
// подстрокой заголовка, и само ключевое слово. Если совпадений нет,
// возвращается профиль по умолчанию и пустое ключевое слово.
func (t *RuleTable) Match(title string) (StatusProfile, string) {
	haystack := title
	if t.foldCase {
		haystack = strings.ToLower(title)
	}
	for _, rule := range t.rules {
		needle := rule.Keyword
		if t.foldCase {
			needle = strings.ToLower(rule.Keyword)
		}
		if strings.Contains(haystack, needle) {
			return rule.Profile, rule.Keyword
		}
	}
	return t.defaultProfile, ""
}

// DefaultProfile возвращает профиль для событий без ключевого слова.
func DefaultProfile() StatusProfile {
	return StatusProfile{Emoji: ":calendar:", Snooze: true, Away: false}
}

// DefaultRules возвращает стандартный набор правил сопоставления.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "Focus Time", Profile: StatusProfile{Emoji: ":computer:", Snooze: true, Away: false}},
		{Keyword: "Lunch", Profile: StatusProfile{Emoji: ":knife_fork_plate:", Snooze: false, Away: true}},
		{Keyword: "Exercise", Profile: StatusProfile{Emoji: ":muscle:", Snooze: false, Away: true}},
		{Keyword: "Take a walk", Profile: StatusProfile{Emoji: ":sunny:", Snooze: false, Away: true}},
		{Keyword: "Take a nap", Profile: StatusProfile{Emoji: ":zzz:", Snooze: false, Away: true}},
		{Keyword: "Travel", Profile: StatusProfile{Emoji: ":bus:", Snooze: false, Away: true}},
		{Keyword: "Personal Commitment", Profile: StatusProfile{Emoji: ":house:", Snooze: false, Away: true}},
	}
}

package types

import "time"

// DayKeyFormat формат ключа календарного дня
const DayKeyFormat = "2006-01-02"

// DayKey возвращает идентификатор календарного дня ("YYYY-MM-DD").
// Два момента времени в пределах одних календарных суток дают одинаковый ключ
// независимо от времени суток
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// ParseDayKey разбирает ключ календарного дня обратно в time.Time (полночь)
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(DayKeyFormat, key)
}

// SameDay возвращает true, если обе даты относятся к одним календарным суткам
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TruncateToDay обнуляет время, оставляя только календарную дату
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

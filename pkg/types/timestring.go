package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrNegativeMinutes возвращается при попытке прибавить отрицательное количество минут
	ErrNegativeMinutes = errors.New("minutes must not be negative")
)

// TimeString время в формате "HH:MM" без привязки к часовому поясу.
// Час может превышать 23: слот, начинающийся в 23:45 с длительностью 30 минут,
// заканчивается в "24:15" (тот же календарный день, перенос через полночь
// отображается на стороне представления).
type TimeString string

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromClock создает TimeString из часа и минуты
func NewTimeStringFromClock(hour, minute int) (TimeString, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeString, hour, minute)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
// Час может быть больше 23 (слоты с окончанием после полуночи),
// но не больше 47 - перенос допустим не более чем на одни сутки
func (t TimeString) Validate() error {
	_, _, err := t.Clock()
	return err
}

// Clock возвращает час и минуту
func (t TimeString) Clock() (hour, minute int, err error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if hour < 0 || hour > 47 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return hour, minute, nil
}

// Hour возвращает час (0 при некорректном значении)
func (t TimeString) Hour() int {
	hour, _, err := t.Clock()
	if err != nil {
		return 0
	}
	return hour
}

// TotalMinutes возвращает количество минут с начала суток
func (t TimeString) TotalMinutes() (int, error) {
	hour, minute, err := t.Clock()
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// AddMinutes прибавляет минуты к времени.
// Минуты нормализуются по модулю 60, избыток переносится в час.
// Час НЕ оборачивается по модулю 24: "23:45" + 30 минут = "24:15"
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if minutes < 0 {
		return "", ErrNegativeMinutes
	}

	total, err := t.TotalMinutes()
	if err != nil {
		return "", err
	}

	total += minutes
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.TotalMinutes()
	b, errB := other.TotalMinutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.TotalMinutes()
	b, errB := other.TotalMinutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// ComputeEnd вычисляет час и минуту окончания слота.
// Минуты суммируются и нормализуются по модулю 60,
// избыток уходит в час без оборачивания по модулю 24
func ComputeEnd(startHour, startMinute, durationMinutes int) (endHour, endMinute int) {
	total := startHour*60 + startMinute + durationMinutes
	return total / 60, total % 60
}

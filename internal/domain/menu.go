package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MenuMode represents the scheduling mode of a booking menu
type MenuMode string

const (
	// ModeReservation capacity-bound scheduling: every slot has N seats
	ModeReservation MenuMode = "reservation"

	// ModeCoordination candidate-date scheduling: slots are poll options with no seat limit
	ModeCoordination MenuMode = "coordination"
)

// ErrInvalidMenu возвращается при нарушении инвариантов меню
var ErrInvalidMenu = errors.New("invalid booking menu")

// BookingMenu represents the bookable offering an operator configures once:
// title, slot duration, scheduling mode and notification target.
// The availability layer never mutates it.
type BookingMenu struct {
	ID                int64
	Title             string
	Description       string
	ContactMethod     string
	DurationMinutes   int
	Mode              MenuMode
	IsActive          bool
	NotificationEmail string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReservation returns true if the menu uses capacity-bound scheduling
func (m *BookingMenu) IsReservation() bool {
	return m.Mode == ModeReservation
}

// IsCoordination returns true if the menu uses candidate-date scheduling
func (m *BookingMenu) IsCoordination() bool {
	return m.Mode == ModeCoordination
}

// Validate проверяет инварианты меню: непустой заголовок,
// длительность слота в допустимых границах и известный режим
func (m *BookingMenu) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidMenu)
	}

	if len(m.Title) > MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidMenu, MaxTitleLength)
	}

	if len(m.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidMenu, MaxDescriptionLength)
	}

	if m.DurationMinutes < MinDurationMinutes || m.DurationMinutes > MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidMenu, MinDurationMinutes, MaxDurationMinutes)
	}

	if m.Mode != ModeReservation && m.Mode != ModeCoordination {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidMenu, m.Mode)
	}

	return nil
}

// ToMenuMode конвертирует строку в MenuMode с валидацией
func ToMenuMode(s string) (MenuMode, error) {
	mode := MenuMode(s)
	if mode != ModeReservation && mode != ModeCoordination {
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidMenu, s)
	}
	return mode, nil
}

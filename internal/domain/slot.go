package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// SlotLifecycle lifecycle state of a slot within an editing session
type SlotLifecycle string

const (
	// LifecycleDraft created locally, not yet saved; may be discarded freely
	LifecycleDraft SlotLifecycle = "draft"

	// LifecyclePersisted already stored; removable only while it has no bookings
	LifecyclePersisted SlotLifecycle = "persisted"
)

var (
	// ErrInvalidSlot возвращается при нарушении инвариантов слота
	ErrInvalidSlot = errors.New("invalid slot")
)

// Slot represents one concrete bookable time interval belonging to a menu.
// EndTime is always StartTime + menu duration; CurrentBookings is maintained
// by the storage boundary and never mutated here.
type Slot struct {
	ID              string
	MenuID          int64
	Date            time.Time // calendar day, time-of-day ignored
	StartTime       types.TimeString
	EndTime         types.TimeString
	MaxCapacity     int
	CurrentBookings int
	Lifecycle       SlotLifecycle

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDraftSlot создает черновик слота для указанного дня и времени начала.
// Идентификатор черновика - локальный токен с зарезервированным префиксом,
// он никогда не пересекается с идентификаторами хранилища
func NewDraftSlot(menuID int64, date time.Time, startHour, startMinute, durationMinutes, maxCapacity int) (*Slot, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidSlot)
	}

	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return nil, fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidSlot, MinDurationMinutes, MaxDurationMinutes)
	}

	if maxCapacity < MinSlotCapacity || maxCapacity > MaxSlotCapacity {
		return nil, fmt.Errorf("%w: maxCapacity must be between %d and %d",
			ErrInvalidSlot, MinSlotCapacity, MaxSlotCapacity)
	}

	start, err := types.NewTimeStringFromClock(startHour, startMinute)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	return &Slot{
		ID:          DraftIDPrefix + uuid.NewString(),
		MenuID:      menuID,
		Date:        types.TruncateToDay(date),
		StartTime:   start,
		EndTime:     end,
		MaxCapacity: maxCapacity,
		Lifecycle:   LifecycleDraft,
	}, nil
}

// IsDraft returns true if the slot was created in the current session and not yet saved
func (s *Slot) IsDraft() bool {
	return s.Lifecycle == LifecycleDraft
}

// IsPersisted returns true if the slot is already stored
func (s *Slot) IsPersisted() bool {
	return s.Lifecycle == LifecyclePersisted
}

// HasBookings returns true if the slot holds at least one active booking
func (s *Slot) HasBookings() bool {
	return s.CurrentBookings > 0
}

// DayKey returns the calendar-day identity of the slot
func (s *Slot) DayKey() string {
	return types.DayKey(s.Date)
}

// Key returns the (day, start time) identity used for deduplication:
// two slots with the same key are the same bookable interval
func (s *Slot) Key() SlotKey {
	return NewSlotKey(s.Date, s.StartTime)
}

// StartInstant возвращает момент начала слота как time.Time
// (календарный день + время начала, без часового пояса)
func (s *Slot) StartInstant() time.Time {
	minutes, err := s.StartTime.TotalMinutes()
	if err != nil {
		return s.Date
	}
	return types.TruncateToDay(s.Date).Add(time.Duration(minutes) * time.Minute)
}

// IsPast returns true if the slot starts at or before now.
// Past slots are never offered as new selectable targets in the editor,
// but may still be displayed read-only when they hold bookings
func (s *Slot) IsPast(now time.Time) bool {
	return !s.StartInstant().After(now)
}

// IsDraftID распознаёт идентификатор черновика по зарезервированному префиксу
func IsDraftID(id string) bool {
	return strings.HasPrefix(id, DraftIDPrefix)
}

// SlotKey идентичность слота в пределах меню: календарный день + время начала
type SlotKey string

// NewSlotKey строит ключ слота из даты и времени начала
func NewSlotKey(date time.Time, start types.TimeString) SlotKey {
	return SlotKey(types.DayKey(date) + "T" + start.String())
}

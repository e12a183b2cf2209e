package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func slot(id string, day int, start string, capacity, bookings int) *domain.Slot {
	return &domain.Slot{
		ID:              id,
		MenuID:          1,
		Date:            time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(start),
		MaxCapacity:     capacity,
		CurrentBookings: bookings,
		Lifecycle:       domain.LifecyclePersisted,
	}
}

func TestWeekStartFor(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		want   time.Time
	}{
		{"monday maps to itself", time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC), time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)},
		{"wednesday maps back to monday", time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)},
		{"sunday maps back six days", time.Date(2026, 9, 20, 23, 0, 0, 0, time.UTC), time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStartFor(tt.anchor))
		})
	}
}

func TestProjectWeek(t *testing.T) {
	weekStart := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	t.Run("Seven Days Always Present", func(t *testing.T) {
		view := ProjectWeek(nil, nil, domain.ModeReservation, weekStart, testNow)

		assert.Equal(t, "2026-09-14", view.WeekStart)
		require.Len(t, view.Days, 7)
		assert.Equal(t, "2026-09-14", view.Days[0].Date)
		assert.Equal(t, "2026-09-20", view.Days[6].Date)
	})

	t.Run("Slots Grouped By Day And Hour", func(t *testing.T) {
		slots := []*domain.Slot{
			slot("1", 14, "10:00", 3, 0),
			slot("2", 14, "10:30", 3, 0),
			slot("3", 14, "19:00", 3, 0),
			slot("4", 16, "10:00", 3, 0),
		}

		view := ProjectWeek(slots, nil, domain.ModeReservation, weekStart, testNow)

		monday := view.Days[0]
		require.Len(t, monday.Cells, 2)

		// Два слота одного часа складываются стопкой в одной ячейке
		assert.Equal(t, 10, monday.Cells[0].Hour)
		require.Len(t, monday.Cells[0].Slots, 2)
		assert.Equal(t, "1", monday.Cells[0].Slots[0].ID)
		assert.Equal(t, "2", monday.Cells[0].Slots[1].ID)

		assert.Equal(t, 19, monday.Cells[1].Hour)

		wednesday := view.Days[2]
		require.Len(t, wednesday.Cells, 1)
	})

	t.Run("Slots Outside Week Excluded", func(t *testing.T) {
		slots := []*domain.Slot{
			slot("1", 13, "10:00", 3, 0), // воскресенье прошлой недели
			slot("2", 21, "10:00", 3, 0), // понедельник следующей
		}

		view := ProjectWeek(slots, nil, domain.ModeReservation, weekStart, testNow)

		for _, d := range view.Days {
			assert.Empty(t, d.Cells)
		}
	})

	t.Run("Booking Counters Attached To Slot Views", func(t *testing.T) {
		slots := []*domain.Slot{slot("7", 14, "10:00", 3, 1)}
		bookings := []*domain.Booking{
			{ID: 1, SlotID: 7, Status: domain.BookingStatusOK},
			{ID: 2, SlotID: 7, Status: domain.BookingStatusCancelled},
			{ID: 3, SlotID: 8, Status: domain.BookingStatusOK},
		}

		view := ProjectWeek(slots, bookings, domain.ModeReservation, weekStart, testNow)

		sv := view.Days[0].Cells[0].Slots[0]
		assert.Equal(t, 1, sv.ConfirmedBookings)
		assert.Equal(t, 1, sv.CancelledBookings)
		assert.Equal(t, 2, sv.RemainingCapacity)
		assert.True(t, sv.IsAvailable)
	})
}

func TestProjectMonth(t *testing.T) {
	anchor := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Only Days With Slots Listed", func(t *testing.T) {
		slots := []*domain.Slot{
			slot("1", 14, "10:00", 3, 1),
			slot("2", 14, "11:00", 3, 3),
			slot("3", 20, "10:00", 3, 0),
			slot("4", 14, "09:00", 3, 0), // другой месяц исключается ниже
		}
		slots[3].Date = time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

		view := ProjectMonth(slots, nil, domain.ModeReservation, anchor, testNow)

		assert.Equal(t, "2026-09", view.Month)
		require.Len(t, view.Days, 2)
		assert.Equal(t, "2026-09-14", view.Days[0].Date)
		assert.Equal(t, "2026-09-20", view.Days[1].Date)
	})

	t.Run("Day Aggregate Is Sum Of Slot Contributions", func(t *testing.T) {
		slots := []*domain.Slot{
			slot("1", 14, "10:00", 3, 1), // остаток 2
			slot("2", 14, "11:00", 3, 3), // остаток 0, недоступен
		}
		bookings := []*domain.Booking{
			{ID: 1, SlotID: 1, Status: domain.BookingStatusOK},
			{ID: 2, SlotID: 2, Status: domain.BookingStatusOK},
			{ID: 3, SlotID: 2, Status: domain.BookingStatusCancelled},
		}

		view := ProjectMonth(slots, bookings, domain.ModeReservation, anchor, testNow)

		require.Len(t, view.Days, 1)
		agg := view.Days[0].Aggregate
		assert.Equal(t, 2, agg.RemainingCapacity)
		assert.Equal(t, 2, agg.ConfirmedBookings)
		assert.Equal(t, 1, agg.CancelledBookings)
		assert.Equal(t, 1, agg.AvailableSlots)
		assert.Zero(t, agg.CandidateCount)
	})

	t.Run("Coordination Mode Counts Candidates", func(t *testing.T) {
		slots := []*domain.Slot{
			slot("1", 14, "10:00", 1, 0),
			slot("2", 14, "11:00", 1, 9),
		}

		view := ProjectMonth(slots, nil, domain.ModeCoordination, anchor, testNow)

		agg := view.Days[0].Aggregate
		assert.Equal(t, 2, agg.CandidateCount)
		assert.Zero(t, agg.RemainingCapacity)
		assert.Equal(t, 2, agg.AvailableSlots)
	})

	t.Run("Aggregate Invariant Across Views", func(t *testing.T) {
		// Сумма подтверждённых бронирований дня не зависит от того,
		// как слоты раскладывались по ячейкам недельного вида
		slots := []*domain.Slot{
			slot("1", 14, "10:00", 3, 1),
			slot("2", 14, "10:30", 3, 2),
			slot("3", 14, "19:00", 3, 0),
		}
		bookings := []*domain.Booking{
			{ID: 1, SlotID: 1, Status: domain.BookingStatusOK},
			{ID: 2, SlotID: 2, Status: domain.BookingStatusOK},
			{ID: 3, SlotID: 2, Status: domain.BookingStatusOK},
		}

		month := ProjectMonth(slots, bookings, domain.ModeReservation, anchor, testNow)
		week := ProjectWeek(slots, bookings, domain.ModeReservation, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), testNow)

		var weekConfirmed int
		for _, d := range week.Days {
			for _, c := range d.Cells {
				for _, sv := range c.Slots {
					weekConfirmed += sv.ConfirmedBookings
				}
			}
		}

		require.Len(t, month.Days, 1)
		assert.Equal(t, month.Days[0].Aggregate.ConfirmedBookings, weekConfirmed)
		assert.Equal(t, 3, weekConfirmed)
	})

	t.Run("Slots Sorted By Start Time Within Day", func(t *testing.T) {
		slots := []*domain.Slot{
			slot("2", 14, "19:00", 3, 0),
			slot("1", 14, "09:00", 3, 0),
		}

		view := ProjectMonth(slots, nil, domain.ModeReservation, anchor, testNow)

		require.Len(t, view.Days[0].Slots, 2)
		assert.Equal(t, "1", view.Days[0].Slots[0].ID)
		assert.Equal(t, "2", view.Days[0].Slots[1].ID)
	})
}

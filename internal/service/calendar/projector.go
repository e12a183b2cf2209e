package calendar

import (
	"sort"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ProjectWeek строит недельный вид: слоты раскладываются по ячейкам
// (день, час начала) для 7 дней от weekStart.
// Чистая функция над видимыми слотами сессии
func ProjectWeek(
	slots []*domain.Slot,
	bookings []*domain.Booking,
	mode domain.MenuMode,
	weekStart time.Time,
	now time.Time,
) *WeekView {
	weekStart = types.TruncateToDay(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 7)
	bySlot := bookingsBySlotID(bookings)

	// Слоты каждого дня раскладываем по часу начала
	byDayHour := make(map[string]map[int][]SlotView)
	for _, slot := range slots {
		if slot.Date.Before(weekStart) || !slot.Date.Before(weekEnd) {
			continue
		}

		view := buildSlotView(slot, bySlot, mode, now)
		day := slot.DayKey()
		hour := slot.StartTime.Hour()

		if byDayHour[day] == nil {
			byDayHour[day] = make(map[int][]SlotView)
		}
		byDayHour[day][hour] = append(byDayHour[day][hour], view)
	}

	days := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		key := types.DayKey(date)

		hours := byDayHour[key]
		cells := make([]HourCell, 0, len(hours))
		for hour, stacked := range hours {
			sortViews(stacked)
			cells = append(cells, HourCell{Hour: hour, Slots: stacked})
		}
		sort.Slice(cells, func(a, b int) bool { return cells[a].Hour < cells[b].Hour })

		days = append(days, WeekDay{Date: key, Cells: cells})
	}

	return &WeekView{
		WeekStart: types.DayKey(weekStart),
		Days:      days,
	}
}

// ProjectMonth строит месячный вид: слоты группируются только по дню,
// с агрегатом на день. Агрегат дня равен сумме вкладов слотов этого дня
// и не зависит от того, как те же слоты группировались в недельном виде
func ProjectMonth(
	slots []*domain.Slot,
	bookings []*domain.Booking,
	mode domain.MenuMode,
	anchor time.Time,
	now time.Time,
) *MonthView {
	monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	bySlot := bookingsBySlotID(bookings)

	byDay := make(map[string][]SlotView)
	for _, slot := range slots {
		if slot.Date.Before(monthStart) || !slot.Date.Before(monthEnd) {
			continue
		}
		byDay[slot.DayKey()] = append(byDay[slot.DayKey()], buildSlotView(slot, bySlot, mode, now))
	}

	keys := make([]string, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	days := make([]MonthDay, 0, len(keys))
	for _, key := range keys {
		views := byDay[key]
		sortViews(views)
		days = append(days, MonthDay{
			Date:      key,
			Slots:     views,
			Aggregate: aggregateDay(views, mode),
		})
	}

	return &MonthView{
		Month: monthStart.Format("2006-01"),
		Days:  days,
	}
}

// buildSlotView вычисляет доступность слота и счётчики его бронирований.
// "Сейчас" берётся один раз на проход проекции, не кэшируется в сессии
func buildSlotView(
	slot *domain.Slot,
	bookingsBySlot map[string][]*domain.Booking,
	mode domain.MenuMode,
	now time.Time,
) SlotView {
	availability := domain.ComputeAvailability(slot, mode)

	view := SlotView{
		ID:                slot.ID,
		Lifecycle:         slot.Lifecycle,
		StartTime:         slot.StartTime,
		EndTime:           slot.EndTime,
		MaxCapacity:       slot.MaxCapacity,
		CurrentBookings:   slot.CurrentBookings,
		RemainingCapacity: availability.RemainingCapacity,
		IsAvailable:       availability.IsAvailable,
		IsCandidate:       availability.IsCandidate,
		IsPast:            slot.IsPast(now),
	}

	for _, bk := range bookingsBySlot[slot.ID] {
		switch {
		case bk.IsConfirmed():
			view.ConfirmedBookings++
		case bk.IsCancelled():
			view.CancelledBookings++
		}
	}

	return view
}

// aggregateDay сумма вкладов слотов дня
func aggregateDay(views []SlotView, mode domain.MenuMode) DayAggregate {
	var agg DayAggregate

	for _, v := range views {
		agg.ConfirmedBookings += v.ConfirmedBookings
		agg.CancelledBookings += v.CancelledBookings

		if mode == domain.ModeCoordination {
			agg.CandidateCount++
		} else {
			agg.RemainingCapacity += v.RemainingCapacity
		}

		if v.IsAvailable && !v.IsPast {
			agg.AvailableSlots++
		}
	}

	return agg
}

// bookingsBySlotID группирует бронирования по идентификатору слота.
// Бронирования существуют только у сохранённых слотов,
// поэтому ключом служит числовой идентификатор хранилища
func bookingsBySlotID(bookings []*domain.Booking) map[string][]*domain.Booking {
	bySlot := make(map[string][]*domain.Booking, len(bookings))
	for _, bk := range bookings {
		id := strconv.FormatInt(bk.SlotID, 10)
		bySlot[id] = append(bySlot[id], bk)
	}
	return bySlot
}

func sortViews(views []SlotView) {
	sort.Slice(views, func(a, b int) bool {
		if views[a].StartTime == views[b].StartTime {
			return views[a].ID < views[b].ID
		}
		return views[a].StartTime.IsBefore(views[b].StartTime)
	})
}

// WeekStartFor возвращает понедельник недели, в которую попадает anchor
func WeekStartFor(anchor time.Time) time.Time {
	anchor = types.TruncateToDay(anchor)
	offset := (int(anchor.Weekday()) + 6) % 7 // Monday = 0
	return anchor.AddDate(0, 0, -offset)
}

package generate_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// dedupeDates убирает повторы дат по календарному дню, сохраняя порядок
func dedupeDates(dates []time.Time) []time.Time {
	seen := make(map[string]struct{}, len(dates))
	result := make([]time.Time, 0, len(dates))

	for _, d := range dates {
		key := types.DayKey(d)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, types.TruncateToDay(d))
	}

	return result
}

// dedupeTimes убирает повторы времён суток по точной паре час:минута,
// сохраняя порядок
func dedupeTimes(times []TimeOfDay) []TimeOfDay {
	seen := make(map[TimeOfDay]struct{}, len(times))
	result := make([]TimeOfDay, 0, len(times))

	for _, t := range times {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}

	return result
}

// generateDrafts чистая функция пакетной генерации: декартово произведение
// дат и времён суток превращается в черновики слотов.
//
// Тройка (день, час, минута), уже занятая существующим слотом - черновиком
// или сохранённым - молча пропускается: генерация идемпотентна относительно
// уже присутствующих слотов. Слоты, начинающиеся в прошлом, также
// пропускаются - прошедшее время не предлагается как новая цель выбора
func generateDrafts(
	menuID int64,
	dates []time.Time,
	times []TimeOfDay,
	durationMinutes int,
	maxCapacity int,
	existing map[domain.SlotKey]struct{},
	now time.Time,
) (drafts []*domain.Slot, skipped int, err error) {
	drafts = make([]*domain.Slot, 0, len(dates)*len(times))

	for _, date := range dates {
		for _, tod := range times {
			start, err := types.NewTimeStringFromClock(tod.Hour, tod.Minute)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}

			key := domain.NewSlotKey(date, start)
			if _, ok := existing[key]; ok {
				skipped++
				continue
			}

			slot, err := domain.NewDraftSlot(menuID, date, tod.Hour, tod.Minute, durationMinutes, maxCapacity)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}

			if slot.IsPast(now) {
				skipped++
				continue
			}

			existing[key] = struct{}{}
			drafts = append(drafts, slot)
		}
	}

	return drafts, skipped, nil
}

// existingKeys собирает занятые пары (день, время начала) из слотов меню
func existingKeys(slots []*domain.Slot) map[domain.SlotKey]struct{} {
	keys := make(map[domain.SlotKey]struct{}, len(slots))
	for _, s := range slots {
		keys[s.Key()] = struct{}{}
	}
	return keys
}

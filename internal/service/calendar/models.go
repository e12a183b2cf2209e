package calendar

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// SlotView проекция одного слота для календаря.
// Каждый слот помечен состоянием жизненного цикла: представление
// рисует черновики и сохранённые слоты по-разному
type SlotView struct {
	ID        string               `json:"id"`
	Lifecycle domain.SlotLifecycle `json:"lifecycle"`
	StartTime types.TimeString     `json:"startTime"`
	EndTime   types.TimeString     `json:"endTime"`

	MaxCapacity       int  `json:"maxCapacity"`
	CurrentBookings   int  `json:"currentBookings"`
	RemainingCapacity int  `json:"remainingCapacity"`
	IsAvailable       bool `json:"isAvailable"`
	IsCandidate       bool `json:"isCandidate"`
	IsPast            bool `json:"isPast"`

	ConfirmedBookings int `json:"confirmedBookings"`
	CancelledBookings int `json:"cancelledBookings"`
}

// HourCell ячейка недельного вида: все слоты дня с одним часом начала.
// Несколько слотов в одном часе складываются стопкой, не сливаются
type HourCell struct {
	Hour  int        `json:"hour"`
	Slots []SlotView `json:"slots"`
}

// WeekDay один день недельного вида
type WeekDay struct {
	Date  string     `json:"date"` // ключ календарного дня
	Cells []HourCell `json:"cells"`
}

// WeekView недельный вид: 7 дней от навигируемого начала недели
type WeekView struct {
	WeekStart string    `json:"weekStart"`
	Days      []WeekDay `json:"days"`
}

// DayAggregate агрегат дня для месячного вида
type DayAggregate struct {
	ConfirmedBookings int `json:"confirmedBookings"`
	CancelledBookings int `json:"cancelledBookings"`

	// RemainingCapacity сумма остатков мест по слотам дня (режим reservation)
	RemainingCapacity int `json:"remainingCapacity"`

	// CandidateCount количество кандидатных слотов дня (режим coordination)
	CandidateCount int `json:"candidateCount"`

	AvailableSlots int `json:"availableSlots"`
}

// MonthDay один день месячного вида
type MonthDay struct {
	Date      string       `json:"date"`
	Slots     []SlotView   `json:"slots"`
	Aggregate DayAggregate `json:"aggregate"`
}

// MonthView месячный вид: дни месяца, в которых есть слоты
type MonthView struct {
	Month string     `json:"month"` // "YYYY-MM"
	Days  []MonthDay `json:"days"`
}

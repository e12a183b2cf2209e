package domain

// Business validation constants
const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 120

	MinSlotCapacity = 1
	MaxSlotCapacity = 100

	DefaultSlotCapacity = 1

	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DraftIDPrefix зарезервированный префикс идентификаторов черновиков.
// Идентификаторы сохранённых слотов выдаёт хранилище (числовые строки),
// поэтому по префиксу всегда видно, к какой популяции относится слот
const DraftIDPrefix = "draft-"

// ActiveBookingStatuses статусы бронирований, занимающих место в слоте.
// Используются хранилищем при подсчёте current_bookings и в deletion guard
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusOK,
	BookingStatusPending,
}

package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

// BookingService интерфейс сервиса чтения бронирований
type BookingService interface {
	ListByMenu(ctx context.Context, menuID, slotID int64) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

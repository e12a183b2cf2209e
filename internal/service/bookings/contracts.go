package bookings

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingMenu, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByMenu(ctx context.Context, menuID int64) ([]*domain.Booking, error)
	ListBySlot(ctx context.Context, slotID int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

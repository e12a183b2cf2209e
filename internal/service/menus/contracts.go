package menus

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	Create(ctx context.Context, menu *domain.BookingMenu) (*domain.BookingMenu, error)
	GetByID(ctx context.Context, id int64) (*domain.BookingMenu, error)
	Update(ctx context.Context, menu *domain.BookingMenu) error
	List(ctx context.Context) ([]*domain.BookingMenu, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package commit_slots

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingMenu, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByMenu(ctx context.Context, menuID int64) ([]*domain.Slot, error)
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	Delete(ctx context.Context, slotID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

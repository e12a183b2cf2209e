package editor

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SlotStorage граница хранилища, с которой сессия общается только в момент commit.
// CreateSlots обязан быть все-или-ничего в пределах одного вызова
type SlotStorage interface {
	CreateSlots(ctx context.Context, menuID int64, slots []*domain.Slot) ([]*domain.Slot, error)
	DeleteSlot(ctx context.Context, slotID string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package delete_slot

import (
	"context"

	commitSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/commit_slots"
)

// CommitSlotsUseCase интерфейс usecase фиксации изменений.
// Одиночное удаление идёт через тот же путь, что и пакетный commit,
// чтобы серверный deletion guard работал одинаково
type CommitSlotsUseCase interface {
	Execute(ctx context.Context, req *commitSlots.Request) (*commitSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

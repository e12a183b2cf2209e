package bulk_generate

import (
	"context"

	generateSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/generate_slots"
)

// GenerateSlotsUseCase интерфейс usecase пакетной генерации черновиков
type GenerateSlotsUseCase interface {
	Execute(ctx context.Context, req *generateSlots.Request) (*generateSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_menu

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/menus/models"
)

// MenuService интерфейс сервиса меню
type MenuService interface {
	Create(ctx context.Context, req *models.CreateMenuRequest) (*models.MenuResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

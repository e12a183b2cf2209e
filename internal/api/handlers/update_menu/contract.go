package update_menu

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/menus/models"
)

// MenuService интерфейс сервиса меню
type MenuService interface {
	Update(ctx context.Context, id int64, req *models.UpdateMenuRequest) (*models.MenuResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

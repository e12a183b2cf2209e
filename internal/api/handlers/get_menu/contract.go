package get_menu

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/menus/models"
)

// MenuService интерфейс сервиса меню
type MenuService interface {
	GetByID(ctx context.Context, id int64) (*models.MenuResponse, error)
	List(ctx context.Context) (*models.MenuListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/service/calendar"
)

// CalendarService интерфейс сервиса календарных проекций
type CalendarService interface {
	GetWeek(ctx context.Context, menuID int64, anchor time.Time) (*calendar.WeekView, error)
	GetMonth(ctx context.Context, menuID int64, anchor time.Time) (*calendar.MonthView, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

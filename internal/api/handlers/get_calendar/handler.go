package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/calendar"
)

const (
	msgInvalidMenuID = "некорректный ID меню"
	msgInvalidView   = "некорректный вид календаря, ожидается week или month"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMenuNotFound  = "меню бронирования не найдено"
)

const (
	viewWeek  = "week"
	viewMonth = "month"
)

type Handler struct {
	service      CalendarService
	timeProvider TimeProvider
	logger       Logger
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

func NewHandler(service CalendarService, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/menus/{menuId}/calendar?view=week&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	menuID, err := strconv.ParseInt(vars["menuId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /menus/{menuId}/calendar - Invalid menu ID: %s", vars["menuId"])
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	view := r.URL.Query().Get("view")
	if view == "" {
		view = viewWeek
	}
	if view != viewWeek && view != viewMonth {
		h.logger.Warn("GET /menus/%d/calendar - Invalid view: %s", menuID, view)
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	// Опорная дата: по умолчанию текущий день
	anchor := h.timeProvider.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /menus/%d/calendar - Invalid date: %s", menuID, raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		anchor = parsed
	}

	var result interface{}
	switch view {
	case viewWeek:
		result, err = h.service.GetWeek(r.Context(), menuID, anchor)
	case viewMonth:
		result, err = h.service.GetMonth(r.Context(), menuID, anchor)
	}

	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrMenuNotFound):
			h.logger.Warn("GET /menus/%d/calendar - Menu not found", menuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		default:
			h.logger.Error("GET /menus/%d/calendar - Failed to build %s view: %v", menuID, view, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

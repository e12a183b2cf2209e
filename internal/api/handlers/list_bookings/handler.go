package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings"
)

const (
	msgInvalidMenuID = "некорректный ID меню"
	msgInvalidSlotID = "некорректный ID слота"
	msgMenuNotFound  = "меню бронирования не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/menus/{menuId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	menuID, err := strconv.ParseInt(vars["menuId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /menus/{menuId}/bookings - Invalid menu ID: %s", vars["menuId"])
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	// Необязательный фильтр по одному слоту
	var slotID int64
	if raw := r.URL.Query().Get("slotId"); raw != "" {
		slotID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || slotID <= 0 {
			h.logger.Warn("GET /menus/%d/bookings - Invalid slot ID: %s", menuID, raw)
			handlers.RespondBadRequest(w, msgInvalidSlotID)
			return
		}
	}

	result, err := h.service.ListByMenu(r.Context(), menuID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrMenuNotFound):
			h.logger.Warn("GET /menus/%d/bookings - Menu not found", menuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		default:
			h.logger.Error("GET /menus/%d/bookings - Failed to list bookings: %v", menuID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/menus"
)

const (
	msgInvalidMenuID = "некорректный ID меню"
	msgMenuNotFound  = "меню бронирования не найдено"
)

type Handler struct {
	service MenuService
	logger  Logger
}

func NewHandler(service MenuService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/menus/{menuId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	menuID, err := strconv.ParseInt(vars["menuId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /menus/{menuId} - Invalid menu ID: %s", vars["menuId"])
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	result, err := h.service.GetByID(r.Context(), menuID)
	if err != nil {
		switch {
		case errors.Is(err, menus.ErrMenuNotFound):
			h.logger.Warn("GET /menus/%d - Menu not found", menuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		default:
			h.logger.Error("GET /menus/%d - Failed to get menu: %v", menuID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/menus
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /menus - Failed to list menus: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package update_menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/menus"
	"github.com/m04kA/SMC-ScheduleService/internal/service/menus/models"
)

const (
	msgInvalidMenuID      = "некорректный ID меню"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMenuData    = "некорректные данные меню бронирования"
	msgMenuNotFound       = "меню бронирования не найдено"
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

// Handle PUT /api/v1/menus/{menuId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	menuID, err := strconv.ParseInt(vars["menuId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /menus/{menuId} - Invalid menu ID: %s", vars["menuId"])
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	var req models.UpdateMenuRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /menus/%d - Invalid request body: %v", menuID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), menuID, &req)
	if err != nil {
		switch {
		case errors.Is(err, menus.ErrMenuNotFound):
			h.logger.Warn("PUT /menus/%d - Menu not found", menuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, menus.ErrInvalidInput):
			h.logger.Warn("PUT /menus/%d - Invalid menu data: %v", menuID, err)
			handlers.RespondBadRequest(w, msgInvalidMenuData)

		default:
			h.logger.Error("PUT /menus/%d - Failed to update menu: %v", menuID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /menus/%d - Menu updated successfully", menuID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

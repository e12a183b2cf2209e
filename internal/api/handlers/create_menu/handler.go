package create_menu

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/menus"
	"github.com/m04kA/SMC-ScheduleService/internal/service/menus/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidMenuData    = "некорректные данные меню бронирования"
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

// Handle POST /api/v1/menus
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMenuRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /menus - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, menus.ErrInvalidInput):
			h.logger.Warn("POST /menus - Invalid menu data: title=%q, error=%v", req.Title, err)
			handlers.RespondBadRequest(w, msgInvalidMenuData)

		default:
			h.logger.Error("POST /menus - Failed to create menu: title=%q, error=%v", req.Title, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /menus - Menu created successfully: menu_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

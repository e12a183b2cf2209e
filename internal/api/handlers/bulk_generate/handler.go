package bulk_generate

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	generateSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/generate_slots"
)

const (
	msgInvalidMenuID      = "некорректный ID меню"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные параметры генерации слотов"
	msgMenuNotFound       = "меню бронирования не найдено"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/menus/{menuId}/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	menuID, err := strconv.ParseInt(vars["menuId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /menus/{menuId}/slots/generate - Invalid menu ID: %s", vars["menuId"])
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	var req BulkGenerateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /menus/%d/slots/generate - Invalid request body: %v", menuID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(menuID)
	if err != nil {
		h.logger.Warn("POST /menus/%d/slots/generate - Failed to parse request: %v", menuID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrMenuNotFound):
			h.logger.Warn("POST /menus/%d/slots/generate - Menu not found", menuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /menus/%d/slots/generate - Invalid input: %v", menuID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /menus/%d/slots/generate - Failed to generate slots: %v", menuID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /menus/%d/slots/generate - Generated %d drafts (requested=%d, skipped=%d)",
		menuID, result.Created, result.Requested, result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package commit_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	commitSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/commit_slots"
)

const (
	msgInvalidMenuID      = "некорректный ID меню"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные параметры фиксации изменений"
	msgMenuNotFound       = "меню бронирования не найдено"
	msgSlotNotFound       = "удаляемый слот не найден"
	msgCommitFailed       = "не удалось зафиксировать изменения"
)

type Handler struct {
	useCase CommitSlotsUseCase
	logger  Logger
}

func NewHandler(useCase CommitSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/menus/{menuId}/slots/commit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	menuID, err := strconv.ParseInt(vars["menuId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /menus/{menuId}/slots/commit - Invalid menu ID: %s", vars["menuId"])
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	var req CommitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /menus/%d/slots/commit - Invalid request body: %v", menuID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(menuID)
	if err != nil {
		h.logger.Warn("POST /menus/%d/slots/commit - Failed to parse request: %v", menuID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, commitSlots.ErrMenuNotFound):
			h.logger.Warn("POST /menus/%d/slots/commit - Menu not found", menuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, commitSlots.ErrSlotNotFound):
			h.logger.Warn("POST /menus/%d/slots/commit - Slot not found: %v", menuID, err)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, commitSlots.ErrInvalidInput):
			h.logger.Warn("POST /menus/%d/slots/commit - Invalid input: %v", menuID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, commitSlots.ErrCommitFailed):
			h.logger.Error("POST /menus/%d/slots/commit - Commit failed entirely: %v", menuID, err)
			handlers.RespondError(w, http.StatusConflict, msgCommitFailed)

		default:
			h.logger.Error("POST /menus/%d/slots/commit - Failed to commit: %v", menuID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Частичная неудача - не ошибка HTTP уровня: клиент получает 207
	// с точными подмножествами неуспешных операций для повторной попытки
	status := http.StatusOK
	if result.PartialFailure {
		status = http.StatusMultiStatus
	}

	h.logger.Info("POST /menus/%d/slots/commit - Commit finished: created=%d, deleted=%d, partial=%t",
		menuID, len(result.Created), len(result.Deleted), result.PartialFailure)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}

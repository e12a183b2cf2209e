package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	commitSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/commit_slots"
)

const (
	msgInvalidMenuID  = "некорректный ID меню"
	msgInvalidSlotID  = "некорректный ID слота"
	msgMenuNotFound   = "меню бронирования не найдено"
	msgSlotNotFound   = "слот не найден"
	msgSlotHasBooking = "слот нельзя удалить: по нему есть активные бронирования"
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

// Handle DELETE /api/v1/menus/{menuId}/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	menuID, err := strconv.ParseInt(vars["menuId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /menus/{menuId}/slots/{slotId} - Invalid menu ID: %s", vars["menuId"])
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	slotID := vars["slotId"]
	if slotID == "" {
		h.logger.Warn("DELETE /menus/%d/slots/{slotId} - Empty slot ID", menuID)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &commitSlots.Request{
		MenuID:    menuID,
		DeleteIDs: []string{slotID},
	})
	if err != nil {
		switch {
		case errors.Is(err, commitSlots.ErrMenuNotFound):
			h.logger.Warn("DELETE /menus/%d/slots/%s - Menu not found", menuID, slotID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, commitSlots.ErrSlotNotFound):
			h.logger.Warn("DELETE /menus/%d/slots/%s - Slot not found", menuID, slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, commitSlots.ErrInvalidInput):
			h.logger.Warn("DELETE /menus/%d/slots/%s - Invalid slot ID: %v", menuID, slotID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		case errors.Is(err, commitSlots.ErrCommitFailed):
			h.logger.Error("DELETE /menus/%d/slots/%s - Delete failed: %v", menuID, slotID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Error("DELETE /menus/%d/slots/%s - Failed to delete slot: %v", menuID, slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Deletion guard: слот с активными бронированиями не тронут.
	// Сюда попадает и guard сессии, и серверный guard времени commit
	if reason, guarded := result.GuardedDeletes[slotID]; guarded {
		h.logger.Warn("DELETE /menus/%d/slots/%s - Guarded: %s", menuID, slotID, reason)
		handlers.RespondConflict(w, msgSlotHasBooking)
		return
	}

	if reason, failed := result.FailedDeletes[slotID]; failed {
		h.logger.Error("DELETE /menus/%d/slots/%s - Delete failed: %s", menuID, slotID, reason)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /menus/%d/slots/%s - Slot deleted successfully", menuID, slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

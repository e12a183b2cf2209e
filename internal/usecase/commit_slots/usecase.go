package commit_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	menuRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/menu"
	slotRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ScheduleService/internal/service/editor"
)

// UseCase use case фиксации изменений сессии редактирования.
// Восстанавливает сессию редактора поверх сохранённых слотов меню,
// применяет запрошенные операции и выполняет commit в хранилище
type UseCase struct {
	menuRepo  MenuRepository
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	menuRepo MenuRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		menuRepo:  menuRepo,
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case фиксации изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CommitSlots: menu=%d, creates=%d, deletes=%d",
		req.MenuID, len(req.Creates), len(req.DeleteIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CommitSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем меню
	menu, err := uc.menuRepo.GetByID(ctx, req.MenuID)
	if err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			uc.logger.Warn("CommitSlots: menu id=%d not found", req.MenuID)
			return nil, ErrMenuNotFound
		}
		uc.logger.Error("CommitSlots: failed to get menu id=%d: %v", req.MenuID, err)
		return nil, fmt.Errorf("%w: failed to get menu: %v", ErrInternal, err)
	}

	// 3. Читаем сохранённые слоты и восстанавливаем сессию редактора
	persisted, err := uc.slotRepo.ListByMenu(ctx, req.MenuID)
	if err != nil {
		uc.logger.Error("CommitSlots: failed to list slots for menu=%d: %v", req.MenuID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	session, err := editor.NewSession(menu, persisted, newSlotStorage(uc.slotRepo, uc.txManager), uc.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open session: %v", ErrInternal, err)
	}

	resp := &Response{
		MenuID:         req.MenuID,
		FailedDeletes:  make(map[string]string),
		GuardedDeletes: make(map[string]string),
	}

	// 4. Превращаем запросы создания в черновики.
	// Коллизии с уже существующими слотами молча пропускаются
	drafts := make([]*domain.Slot, 0, len(req.Creates))
	for _, c := range req.Creates {
		capacity := c.MaxCapacity
		if capacity == 0 {
			capacity = domain.DefaultSlotCapacity
		}

		draft, err := domain.NewDraftSlot(req.MenuID, c.Date, c.StartHour, c.StartMinute, menu.DurationMinutes, capacity)
		if err != nil {
			uc.logger.Warn("CommitSlots: invalid slot create for menu=%d: %v", req.MenuID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		drafts = append(drafts, draft)
	}

	added, skipped, err := session.AddDrafts(drafts)
	if err != nil {
		uc.logger.Warn("CommitSlots: add drafts failed for menu=%d: %v", req.MenuID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if skipped > 0 {
		uc.logger.Info("CommitSlots: menu=%d, %d drafts queued, %d duplicate creates skipped",
			req.MenuID, added, skipped)
	}

	// 5. Помечаем удаления. Сработавший deletion guard - не ошибка commit:
	// слот остаётся нетронутым, причина возвращается оператору
	for _, id := range req.DeleteIDs {
		if err := session.DeletePersisted(id); err != nil {
			if errors.Is(err, editor.ErrSlotHasBookings) {
				uc.logger.Warn("CommitSlots: delete id=%s rejected by guard", id)
				resp.GuardedDeletes[id] = err.Error()
				continue
			}
			if errors.Is(err, editor.ErrSlotNotFound) {
				uc.logger.Warn("CommitSlots: delete id=%s rejected: slot not found", id)
				return nil, fmt.Errorf("%w: %s", ErrSlotNotFound, id)
			}
			uc.logger.Warn("CommitSlots: delete id=%s rejected: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	// 6. Commit: создания пакетно, удаления по одному
	result, commitErr := session.Commit(ctx)
	if commitErr != nil {
		var ce *editor.CommitError
		if errors.As(commitErr, &ce) {
			// Частичная неудача: возвращаем успешное и неуспешное подмножества
			resp.Created = result.Created
			resp.Deleted = result.Deleted
			if ce.CreateErr != nil {
				resp.CreateError = ce.CreateErr.Error()
			}
			for id, delErr := range ce.FailedDeletes {
				// Бронирование появилось между чтением сессии и удалением:
				// серверный guard сработал, слот остаётся нетронутым.
				// Как и guard на шаге 5, это не ошибка commit
				if errors.Is(delErr, slotRepo.ErrSlotHasBookings) {
					resp.GuardedDeletes[id] = delErr.Error()
					continue
				}
				resp.FailedDeletes[id] = delErr.Error()
			}

			if resp.CreateError == "" && len(resp.FailedDeletes) == 0 {
				uc.logger.Warn("CommitSlots: menu=%d, %d deletes rejected by guard at commit",
					req.MenuID, len(resp.GuardedDeletes))
				return resp, nil
			}

			resp.PartialFailure = errors.Is(commitErr, editor.ErrCommitPartial)
			if !resp.PartialFailure {
				uc.logger.Error("CommitSlots: menu=%d commit failed entirely: %v", req.MenuID, commitErr)
				return resp, fmt.Errorf("%w: %v", ErrCommitFailed, commitErr)
			}

			uc.logger.Warn("CommitSlots: menu=%d committed partially: %v", req.MenuID, commitErr)
			return resp, nil
		}

		if errors.Is(commitErr, editor.ErrInvalidInput) {
			uc.logger.Warn("CommitSlots: menu=%d commit validation failed: %v", req.MenuID, commitErr)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, commitErr)
		}

		uc.logger.Error("CommitSlots: menu=%d commit failed: %v", req.MenuID, commitErr)
		return nil, fmt.Errorf("%w: %v", ErrInternal, commitErr)
	}

	resp.Created = result.Created
	resp.Deleted = result.Deleted

	uc.logger.Info("CommitSlots: menu=%d, created=%d, deleted=%d",
		req.MenuID, len(resp.Created), len(resp.Deleted))

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MenuID <= 0 {
		return fmt.Errorf("%w: menuID must be positive", ErrInvalidInput)
	}

	if len(req.Creates) == 0 && len(req.DeleteIDs) == 0 {
		return fmt.Errorf("%w: nothing to commit", ErrInvalidInput)
	}

	for _, id := range req.DeleteIDs {
		if id == "" {
			return fmt.Errorf("%w: empty delete id", ErrInvalidInput)
		}
		if domain.IsDraftID(id) {
			return fmt.Errorf("%w: draft id %s cannot be deleted from storage", ErrInvalidInput, id)
		}
	}

	return nil
}

package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	menuRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/menu"
)

// UseCase use case пакетной генерации черновиков слотов
type UseCase struct {
	menuRepo     MenuRepository
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(menuRepo MenuRepository, slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		menuRepo:     menuRepo,
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case пакетной генерации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: menu=%d, dates=%d, times=%d, capacity=%d",
		req.MenuID, len(req.Dates), len(req.Times), req.MaxCapacity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем меню: из него берётся длительность каждого слота
	menu, err := uc.menuRepo.GetByID(ctx, req.MenuID)
	if err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			uc.logger.Warn("GenerateSlots: menu id=%d not found", req.MenuID)
			return nil, ErrMenuNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get menu id=%d: %v", req.MenuID, err)
		return nil, fmt.Errorf("%w: failed to get menu: %v", ErrInternal, err)
	}

	// 3. Дедуплицируем входы
	dates := dedupeDates(req.Dates)
	times := dedupeTimes(req.Times)
	requested := len(dates) * len(times)

	// 4. Ёмкость слота: одно значение на весь пакет
	capacity := req.MaxCapacity
	if capacity == 0 {
		capacity = domain.DefaultSlotCapacity
	}

	// 5. Собираем занятые пары (день, время) уже существующих слотов
	slots, err := uc.slotRepo.ListByMenu(ctx, req.MenuID)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to list slots for menu=%d: %v", req.MenuID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 6. Генерируем черновики с дедупликацией
	drafts, skipped, err := generateDrafts(
		req.MenuID,
		dates,
		times,
		menu.DurationMinutes,
		capacity,
		existingKeys(slots),
		uc.timeProvider.Now(),
	)
	if err != nil {
		uc.logger.Warn("GenerateSlots: generation failed for menu=%d: %v", req.MenuID, err)
		return nil, err
	}

	uc.logger.Info("GenerateSlots: menu=%d, requested=%d, created=%d, skipped=%d",
		req.MenuID, requested, len(drafts), skipped)

	return &Response{
		MenuID:    req.MenuID,
		Requested: requested,
		Created:   len(drafts),
		Skipped:   skipped,
		Drafts:    drafts,
	}, nil
}

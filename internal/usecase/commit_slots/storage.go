package commit_slots

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// slotStorage адаптирует репозиторий слотов к границе хранилища сессии.
// Пакетное создание заворачивается в сериализуемую транзакцию:
// вызов все-или-ничего, как того требует контракт границы
type slotStorage struct {
	slotRepo  SlotRepository
	txManager TransactionManager
}

func newSlotStorage(slotRepo SlotRepository, txManager TransactionManager) *slotStorage {
	return &slotStorage{slotRepo: slotRepo, txManager: txManager}
}

// CreateSlots создает пакет слотов в одной транзакции
func (s *slotStorage) CreateSlots(ctx context.Context, menuID int64, slots []*domain.Slot) ([]*domain.Slot, error) {
	created := make([]*domain.Slot, 0, len(slots))

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for _, slot := range slots {
			persisted, err := s.slotRepo.Create(txCtx, slot)
			if err != nil {
				return err
			}
			created = append(created, persisted)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteSlot удаляет один слот; серверный deletion guard выполняется в запросе
func (s *slotStorage) DeleteSlot(ctx context.Context, slotID string) error {
	return s.slotRepo.Delete(ctx, slotID)
}

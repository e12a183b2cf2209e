package editor

import (
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Session сессия редактирования слотов одного меню.
// Владеет объединением двух популяций слотов: сохранённых (прочитанных из
// хранилища при старте сессии) и черновиков, созданных локально.
// Ровно одна сессия владеет слотами меню в каждый момент времени.
//
// Все операции кроме Commit - чистые, мгновенные переходы состояния.
// Брошенная сессия просто отбрасывает черновики и буфер удалений
// без побочных эффектов
type Session struct {
	menu *domain.BookingMenu

	// mu защищает состояние сессии: persisted, drafts, deletedIDs
	// и флаг committing. Пока commit в полёте, мутации из других
	// горутин разрешены - их изменения попадут в следующий commit
	mu         sync.Mutex
	persisted  []*domain.Slot
	drafts     []*domain.Slot
	committing bool

	// deletedIDs буфер оптимистичных удалений: слот исчезает из
	// VisibleSlots сразу, но из хранилища - только при commit
	deletedIDs map[string]struct{}

	storage      SlotStorage
	timeProvider TimeProvider
	logger       Logger
}

// NewSession создает сессию редактирования поверх сохранённых слотов меню
func NewSession(menu *domain.BookingMenu, persisted []*domain.Slot, storage SlotStorage, logger Logger) (*Session, error) {
	if menu == nil {
		return nil, fmt.Errorf("%w: menu is required", ErrInvalidInput)
	}

	for _, s := range persisted {
		if !s.IsPersisted() {
			return nil, fmt.Errorf("%w: slot %s is not persisted", ErrInvalidInput, s.ID)
		}
	}

	return &Session{
		menu:         menu,
		persisted:    persisted,
		drafts:       make([]*domain.Slot, 0),
		deletedIDs:   make(map[string]struct{}),
		storage:      storage,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}, nil
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (s *Session) WithTimeProvider(tp TimeProvider) *Session {
	s.timeProvider = tp
	return s
}

// Menu возвращает меню, слоты которого редактирует сессия
func (s *Session) Menu() *domain.BookingMenu {
	return s.menu
}

// AddDraft добавляет черновик в сессию. Без немедленного сохранения.
// Слоты, начинающиеся в прошлом, не предлагаются как новые цели выбора
func (s *Session) AddDraft(slot *domain.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addDraftLocked(slot)
}

func (s *Session) addDraftLocked(slot *domain.Slot) error {
	if slot == nil {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	if !slot.IsDraft() || !domain.IsDraftID(slot.ID) {
		return fmt.Errorf("%w: id=%s", ErrNotDraft, slot.ID)
	}

	if slot.IsPast(s.timeProvider.Now()) {
		return fmt.Errorf("%w: %s %s", ErrPastSlot, slot.DayKey(), slot.StartTime)
	}

	s.drafts = append(s.drafts, slot)
	return nil
}

// AddDrafts добавляет пакет черновиков с дедупликацией: черновик,
// чья пара (день, время начала) уже занята видимым слотом, молча
// пропускается - пакетное добавление идемпотентно
func (s *Session) AddDrafts(slots []*domain.Slot) (added, skipped int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.keysLocked()

	for _, slot := range slots {
		key := slot.Key()
		if _, ok := existing[key]; ok {
			skipped++
			continue
		}

		if err := s.addDraftLocked(slot); err != nil {
			return added, skipped, err
		}

		existing[key] = struct{}{}
		added++
	}

	return added, skipped, nil
}

// DeleteDraft удаляет черновик безусловно:
// черновики не несут бронирований, guard не нужен
func (s *Session) DeleteDraft(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, slot := range s.drafts {
		if slot.ID == id {
			s.drafts = append(s.drafts[:i], s.drafts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: draft id=%s", ErrSlotNotFound, id)
}

// DeletePersisted помечает сохранённый слот удалённым.
// Слот с активными бронированиями удалить нельзя - операция завершается
// ошибкой без изменения состояния, слот остаётся видимым.
// Само удаление из хранилища откладывается до Commit
func (s *Session) DeletePersisted(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.findPersistedLocked(id)
	if slot == nil {
		return fmt.Errorf("%w: persisted id=%s", ErrSlotNotFound, id)
	}

	if slot.HasBookings() {
		return fmt.Errorf("%w: id=%s, bookings=%d", ErrSlotHasBookings, id, slot.CurrentBookings)
	}

	s.deletedIDs[id] = struct{}{}
	return nil
}

// VisibleSlots возвращает сохранённые слоты без помеченных удалёнными,
// объединённые с черновиками. Единственный источник истины для проекций
func (s *Session) VisibleSlots() []*domain.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleSlotsLocked()
}

func (s *Session) visibleSlotsLocked() []*domain.Slot {
	visible := make([]*domain.Slot, 0, len(s.persisted)+len(s.drafts))

	for _, slot := range s.persisted {
		if _, deleted := s.deletedIDs[slot.ID]; deleted {
			continue
		}
		visible = append(visible, slot)
	}

	return append(visible, s.drafts...)
}

// TotalCount общее количество слотов, отображаемое оператору
func (s *Session) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visibleSlotsLocked())
}

// Keys возвращает занятые пары (день, время начала) видимых слотов
func (s *Session) Keys() map[domain.SlotKey]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keysLocked()
}

func (s *Session) keysLocked() map[domain.SlotKey]struct{} {
	keys := make(map[domain.SlotKey]struct{})
	for _, slot := range s.visibleSlotsLocked() {
		keys[slot.Key()] = struct{}{}
	}
	return keys
}

// PendingCreates черновики, ожидающие сохранения
func (s *Session) PendingCreates() []*domain.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	creates := make([]*domain.Slot, len(s.drafts))
	copy(creates, s.drafts)
	return creates
}

// PendingDeletions идентификаторы сохранённых слотов, ожидающие удаления
func (s *Session) PendingDeletions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingDeletionsLocked()
}

func (s *Session) pendingDeletionsLocked() []string {
	ids := make([]string, 0, len(s.deletedIDs))
	for _, slot := range s.persisted {
		if _, ok := s.deletedIDs[slot.ID]; ok {
			ids = append(ids, slot.ID)
		}
	}
	return ids
}

func (s *Session) findPersistedLocked(id string) *domain.Slot {
	for _, slot := range s.persisted {
		if slot.ID == id {
			return slot
		}
	}
	return nil
}

func (s *Session) removePersistedLocked(id string) {
	for i, slot := range s.persisted {
		if slot.ID == id {
			s.persisted = append(s.persisted[:i], s.persisted[i+1:]...)
			return
		}
	}
}

func (s *Session) removeDraftLocked(id string) {
	for i, slot := range s.drafts {
		if slot.ID == id {
			s.drafts = append(s.drafts[:i], s.drafts[i+1:]...)
			return
		}
	}
}

// validateForCommit локальная валидация перед любым сетевым вызовом:
// commit с пустым заголовком или без единого видимого слота не допускается
func (s *Session) validateForCommit() error {
	if strings.TrimSpace(s.menu.Title) == "" {
		return fmt.Errorf("%w: menu title is required", ErrInvalidInput)
	}

	if s.TotalCount() == 0 {
		return fmt.Errorf("%w: cannot commit with zero visible slots", ErrInvalidInput)
	}

	return nil
}

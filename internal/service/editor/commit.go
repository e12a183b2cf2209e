package editor

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// CommitResult итог успешных операций commit
type CommitResult struct {
	Created []*domain.Slot // черновики, ставшие сохранёнными (с идентификаторами хранилища)
	Deleted []string       // идентификаторы удалённых из хранилища слотов
}

// CommitError структурная ошибка commit: перечисляет неуспешное подмножество,
// которое осталось в сессии для повторной попытки.
// Повтор никогда не задублирует уже успешные создания
type CommitError struct {
	// CreateErr ошибка пакетного создания; создание все-или-ничего,
	// поэтому при ошибке все черновики остаются в сессии
	CreateErr error

	// FailedDeletes ошибки удаления по идентификаторам
	FailedDeletes map[string]error

	// Partial true, если хотя бы одна операция прошла успешно
	Partial bool
}

// Error реализует интерфейс error
func (e *CommitError) Error() string {
	return fmt.Sprintf("commit: createErr=%v, failedDeletes=%d, partial=%t",
		e.CreateErr, len(e.FailedDeletes), e.Partial)
}

// Unwrap позволяет распознавать ошибку через errors.Is
func (e *CommitError) Unwrap() error {
	if e.Partial {
		return ErrCommitPartial
	}
	return ErrCommitFailed
}

// Commit передает черновики и буфер удалений границе хранилища.
//
// Единственная приостанавливающаяся операция сессии: пока commit в полёте,
// повторный Commit отклоняется, но AddDraft/DeleteDraft продолжают работать -
// их изменения попадут в следующий commit. Вызовы хранилища идут вне мьютекса,
// снимок и сверка результата - под ним.
//
// При частичной неудаче сессия сохраняет ровно неуспешное подмножество.
// Сессия остаётся рабочей после любой ошибки
func (s *Session) Commit(ctx context.Context) (*CommitResult, error) {
	if err := s.validateForCommit(); err != nil {
		return nil, err
	}

	pendingCreates, pendingDeletes, err := s.beginCommit()
	if err != nil {
		return nil, err
	}
	defer s.endCommit()

	s.logger.Info("Commit: menu=%d, creates=%d, deletes=%d",
		s.menu.ID, len(pendingCreates), len(pendingDeletes))

	result := &CommitResult{
		Created: make([]*domain.Slot, 0, len(pendingCreates)),
		Deleted: make([]string, 0, len(pendingDeletes)),
	}
	commitErr := &CommitError{FailedDeletes: make(map[string]error)}

	// Создания: все-или-ничего в пределах вызова.
	// При ошибке черновики остаются в сессии целиком
	if len(pendingCreates) > 0 {
		created, err := s.storage.CreateSlots(ctx, s.menu.ID, pendingCreates)
		if err != nil {
			s.logger.Error("Commit: batch create failed for menu=%d: %v", s.menu.ID, err)
			commitErr.CreateErr = err
		} else {
			s.mu.Lock()
			for i, persisted := range created {
				s.removeDraftLocked(pendingCreates[i].ID)
				s.persisted = append(s.persisted, persisted)
				result.Created = append(result.Created, persisted)
			}
			s.mu.Unlock()
			s.logger.Info("Commit: created %d slots for menu=%d", len(created), s.menu.ID)
		}
	}

	// Удаления выполняются по одному: каждое может независимо упасть
	// на серверном deletion guard
	for _, id := range pendingDeletes {
		if err := s.storage.DeleteSlot(ctx, id); err != nil {
			s.logger.Warn("Commit: delete slot id=%s failed: %v", id, err)
			commitErr.FailedDeletes[id] = err
			continue
		}

		s.mu.Lock()
		delete(s.deletedIDs, id)
		s.removePersistedLocked(id)
		s.mu.Unlock()
		result.Deleted = append(result.Deleted, id)
	}

	failed := commitErr.CreateErr != nil || len(commitErr.FailedDeletes) > 0
	if !failed {
		s.logger.Info("Commit: menu=%d committed successfully", s.menu.ID)
		return result, nil
	}

	commitErr.Partial = len(result.Created) > 0 || len(result.Deleted) > 0
	return result, commitErr
}

// beginCommit захватывает единственный слот commit в полёте и снимает
// под мьютексом снимок ожидающих операций: добавленное во время commit
// остаётся на следующий раз
func (s *Session) beginCommit() (creates []*domain.Slot, deletes []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.committing {
		return nil, nil, ErrCommitInProgress
	}
	s.committing = true

	creates = make([]*domain.Slot, len(s.drafts))
	copy(creates, s.drafts)
	return creates, s.pendingDeletionsLocked(), nil
}

func (s *Session) endCommit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committing = false
}

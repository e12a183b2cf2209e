package commit_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SlotCreate запрос на создание одного слота
type SlotCreate struct {
	Date        time.Time
	StartHour   int
	StartMinute int
	MaxCapacity int // 0 = значение по умолчанию
}

// Request модель запроса на фиксацию изменений сессии редактирования:
// пакет создаваемых слотов и идентификаторы удаляемых
type Request struct {
	MenuID    int64
	Creates   []SlotCreate
	DeleteIDs []string
}

// Response модель ответа.
// При частичной неудаче неуспешные подмножества перечислены отдельно -
// повторная попытка затрагивает только их и не задублирует успешные создания
type Response struct {
	MenuID  int64
	Created []*domain.Slot // сохранённые слоты с идентификаторами хранилища
	Deleted []string       // успешно удалённые идентификаторы

	PartialFailure bool
	CreateError    string            // непустая строка, если пакет создания не прошёл
	FailedDeletes  map[string]string // id -> причина
	GuardedDeletes map[string]string // id -> причина (deletion guard, слот не тронут)
}

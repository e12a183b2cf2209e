package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// TimeOfDay время суток для пакетной генерации
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Request модель запроса на пакетную генерацию черновиков.
// Слоты порождаются декартовым произведением дат и времён суток
type Request struct {
	MenuID      int64
	Dates       []time.Time // выбранные дни, дедуплицируются по календарному дню
	Times       []TimeOfDay // выбранные времена суток, дедуплицируются по паре час:минута
	MaxCapacity int         // применяется ко всем слотам пакета; 0 = значение по умолчанию
}

// Response модель ответа с результатом генерации.
// Requested - теоретический максимум до дедупликации, Created - реально
// добавленные черновики: оператор видит оба числа и не вводится в
// заблуждение о количестве новых слотов
type Response struct {
	MenuID    int64
	Requested int // |dates| * |times| после дедупликации входов
	Created   int // реально созданных черновиков
	Skipped   int // коллизии с уже существующими слотами
	Drafts    []*domain.Slot
}

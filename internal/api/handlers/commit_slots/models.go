package commit_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	commitSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/commit_slots"
)

// SlotCreateRequest один создаваемый слот в HTTP запросе
type SlotCreateRequest struct {
	Date        string `json:"date"`      // YYYY-MM-DD
	StartTime   string `json:"startTime"` // HH:MM
	MaxCapacity int    `json:"maxCapacity"`
}

// CommitRequest HTTP запрос на фиксацию изменений
type CommitRequest struct {
	Creates   []SlotCreateRequest `json:"creates"`
	DeleteIDs []string            `json:"deleteIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель usecase
func (r *CommitRequest) ToUseCaseRequest(menuID int64) (*commitSlots.Request, error) {
	creates := make([]commitSlots.SlotCreate, 0, len(r.Creates))
	for _, c := range r.Creates {
		date, err := time.Parse(domain.DateFormat, c.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", c.Date, err)
		}
		start, err := time.Parse(domain.TimeFormat, c.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", c.StartTime, err)
		}
		creates = append(creates, commitSlots.SlotCreate{
			Date:        date,
			StartHour:   start.Hour(),
			StartMinute: start.Minute(),
			MaxCapacity: c.MaxCapacity,
		})
	}

	return &commitSlots.Request{
		MenuID:    menuID,
		Creates:   creates,
		DeleteIDs: r.DeleteIDs,
	}, nil
}

// CreatedSlotResponse сохранённый слот в HTTP ответе
type CreatedSlotResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	MaxCapacity int    `json:"maxCapacity"`
}

// CommitResponse HTTP ответ с результатом фиксации
type CommitResponse struct {
	MenuID         int64                 `json:"menuId"`
	Created        []CreatedSlotResponse `json:"created"`
	Deleted        []string              `json:"deleted"`
	PartialFailure bool                  `json:"partialFailure"`
	CreateError    string                `json:"createError,omitempty"`
	FailedDeletes  map[string]string     `json:"failedDeletes,omitempty"`
	GuardedDeletes map[string]string     `json:"guardedDeletes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *commitSlots.Response) *CommitResponse {
	created := make([]CreatedSlotResponse, 0, len(resp.Created))
	for _, slot := range resp.Created {
		created = append(created, CreatedSlotResponse{
			ID:          slot.ID,
			Date:        slot.Date.Format(domain.DateFormat),
			StartTime:   string(slot.StartTime),
			EndTime:     string(slot.EndTime),
			MaxCapacity: slot.MaxCapacity,
		})
	}

	return &CommitResponse{
		MenuID:         resp.MenuID,
		Created:        created,
		Deleted:        resp.Deleted,
		PartialFailure: resp.PartialFailure,
		CreateError:    resp.CreateError,
		FailedDeletes:  resp.FailedDeletes,
		GuardedDeletes: resp.GuardedDeletes,
	}
}

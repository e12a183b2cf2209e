package bulk_generate

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	generateSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/generate_slots"
)

// BulkGenerateRequest HTTP запрос на пакетную генерацию черновиков
type BulkGenerateRequest struct {
	Dates       []string `json:"dates"`       // YYYY-MM-DD
	Times       []string `json:"times"`       // HH:MM
	MaxCapacity int      `json:"maxCapacity"` // 0 = значение по умолчанию
}

// ToUseCaseRequest конвертирует HTTP запрос в модель usecase
func (r *BulkGenerateRequest) ToUseCaseRequest(menuID int64) (*generateSlots.Request, error) {
	dates := make([]time.Time, 0, len(r.Dates))
	for _, raw := range r.Dates {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", raw, err)
		}
		dates = append(dates, parsed)
	}

	times := make([]generateSlots.TimeOfDay, 0, len(r.Times))
	for _, raw := range r.Times {
		parsed, err := time.Parse(domain.TimeFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", raw, err)
		}
		times = append(times, generateSlots.TimeOfDay{
			Hour:   parsed.Hour(),
			Minute: parsed.Minute(),
		})
	}

	return &generateSlots.Request{
		MenuID:      menuID,
		Dates:       dates,
		Times:       times,
		MaxCapacity: r.MaxCapacity,
	}, nil
}

// DraftSlotResponse черновик слота в HTTP ответе
type DraftSlotResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	MaxCapacity int    `json:"maxCapacity"`
}

// BulkGenerateResponse HTTP ответ с результатом генерации
type BulkGenerateResponse struct {
	MenuID    int64               `json:"menuId"`
	Requested int                 `json:"requested"`
	Created   int                 `json:"created"`
	Skipped   int                 `json:"skipped"`
	Drafts    []DraftSlotResponse `json:"drafts"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *generateSlots.Response) *BulkGenerateResponse {
	drafts := make([]DraftSlotResponse, 0, len(resp.Drafts))
	for _, slot := range resp.Drafts {
		drafts = append(drafts, DraftSlotResponse{
			ID:          slot.ID,
			Date:        slot.Date.Format(domain.DateFormat),
			StartTime:   string(slot.StartTime),
			EndTime:     string(slot.EndTime),
			MaxCapacity: slot.MaxCapacity,
		})
	}

	return &BulkGenerateResponse{
		MenuID:    resp.MenuID,
		Requested: resp.Requested,
		Created:   resp.Created,
		Skipped:   resp.Skipped,
		Drafts:    drafts,
	}
}

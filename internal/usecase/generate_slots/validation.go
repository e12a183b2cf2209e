package generate_slots

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MenuID <= 0 {
		return fmt.Errorf("%w: menuID must be positive", ErrInvalidInput)
	}

	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}

	if len(req.Times) == 0 {
		return fmt.Errorf("%w: at least one time of day is required", ErrInvalidInput)
	}

	for _, d := range req.Dates {
		if d.IsZero() {
			return fmt.Errorf("%w: date must not be zero", ErrInvalidInput)
		}
	}

	for _, t := range req.Times {
		if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
			return fmt.Errorf("%w: invalid time of day %02d:%02d", ErrInvalidInput, t.Hour, t.Minute)
		}
	}

	if req.MaxCapacity < 0 || req.MaxCapacity > domain.MaxSlotCapacity {
		return fmt.Errorf("%w: maxCapacity must be between 0 and %d", ErrInvalidInput, domain.MaxSlotCapacity)
	}

	return nil
}

package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	menuRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/menu"
	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

// Service сервис чтения бронирований.
// Бронирования создаёт визитёрская часть системы, здесь они только читаются
type Service struct {
	menuRepo    MenuRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(menuRepo MenuRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		menuRepo:    menuRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListByMenu получает бронирования всех слотов меню.
// Ненулевой slotID сужает выборку до одного слота
func (s *Service) ListByMenu(ctx context.Context, menuID, slotID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListByMenu: fetching bookings for menu=%d, slot=%d", menuID, slotID)

	if _, err := s.menuRepo.GetByID(ctx, menuID); err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			s.logger.Warn("ListByMenu: menu id=%d not found", menuID)
			return nil, ErrMenuNotFound
		}
		s.logger.Error("ListByMenu: repository error for menu=%d: %v", menuID, err)
		return nil, fmt.Errorf("%w: ListByMenu - repository error: %v", ErrInternal, err)
	}

	var (
		bookings []*domain.Booking
		err      error
	)
	if slotID > 0 {
		bookings, err = s.bookingRepo.ListBySlot(ctx, slotID)
	} else {
		bookings, err = s.bookingRepo.ListByMenu(ctx, menuID)
	}
	if err != nil {
		s.logger.Error("ListByMenu: repository error for menu=%d: %v", menuID, err)
		return nil, fmt.Errorf("%w: ListByMenu - repository error: %v", ErrInternal, err)
	}

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(bookings)),
	}

	for _, bk := range bookings {
		resp.Bookings = append(resp.Bookings, models.FromDomainBooking(bk))

		switch bk.Status {
		case domain.BookingStatusOK:
			resp.Confirmed++
		case domain.BookingStatusCancelled:
			resp.Cancelled++
		case domain.BookingStatusPending:
			resp.Pending++
		}

		if bk.OccupiesSeat() {
			resp.Occupied++
		}
	}

	s.logger.Info("ListByMenu: fetched %d bookings for menu=%d", len(resp.Bookings), menuID)
	return resp, nil
}

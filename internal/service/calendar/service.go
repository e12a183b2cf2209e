package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	menuRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/menu"
)

// Service сервис календарных проекций.
// Читает слоты и бронирования меню и строит недельный или месячный вид
type Service struct {
	menuRepo     MenuRepository
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	menuRepo MenuRepository,
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		menuRepo:     menuRepo,
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetWeek строит недельный вид для недели, содержащей anchor
func (s *Service) GetWeek(ctx context.Context, menuID int64, anchor time.Time) (*WeekView, error) {
	mode, slots, bookings, err := s.load(ctx, "GetWeek", menuID)
	if err != nil {
		return nil, err
	}

	weekStart := WeekStartFor(anchor)
	view := ProjectWeek(slots, bookings, mode, weekStart, s.timeProvider.Now())

	s.logger.Info("GetWeek: menu=%d, weekStart=%s, slots=%d", menuID, view.WeekStart, len(slots))
	return view, nil
}

// GetMonth строит месячный вид для месяца, содержащего anchor
func (s *Service) GetMonth(ctx context.Context, menuID int64, anchor time.Time) (*MonthView, error) {
	mode, slots, bookings, err := s.load(ctx, "GetMonth", menuID)
	if err != nil {
		return nil, err
	}

	view := ProjectMonth(slots, bookings, mode, anchor, s.timeProvider.Now())

	s.logger.Info("GetMonth: menu=%d, month=%s, days=%d", menuID, view.Month, len(view.Days))
	return view, nil
}

func (s *Service) load(ctx context.Context, op string, menuID int64) (domain.MenuMode, []*domain.Slot, []*domain.Booking, error) {
	menu, err := s.menuRepo.GetByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			s.logger.Warn("%s: menu id=%d not found", op, menuID)
			return "", nil, nil, ErrMenuNotFound
		}
		s.logger.Error("%s: failed to get menu id=%d: %v", op, menuID, err)
		return "", nil, nil, fmt.Errorf("%w: failed to get menu: %v", ErrInternal, err)
	}

	slots, err := s.slotRepo.ListByMenu(ctx, menuID)
	if err != nil {
		s.logger.Error("%s: failed to list slots for menu=%d: %v", op, menuID, err)
		return "", nil, nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.ListByMenu(ctx, menuID)
	if err != nil {
		s.logger.Error("%s: failed to list bookings for menu=%d: %v", op, menuID, err)
		return "", nil, nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	return menu.Mode, slots, bookings, nil
}

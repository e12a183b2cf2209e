package menus

import (
	"context"
	"errors"
	"fmt"

	menuRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/menu"
	"github.com/m04kA/SMC-ScheduleService/internal/service/menus/models"
)

// Service сервис для работы с меню бронирования
type Service struct {
	menuRepo MenuRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса меню
func NewService(menuRepo MenuRepository, logger Logger) *Service {
	return &Service{
		menuRepo: menuRepo,
		logger:   logger,
	}
}

// Create создает меню бронирования
func (s *Service) Create(ctx context.Context, req *models.CreateMenuRequest) (*models.MenuResponse, error) {
	s.logger.Info("Create: creating menu title=%q, mode=%s", req.Title, req.Mode)

	menu, err := req.ToDomainMenu()
	if err != nil {
		s.logger.Warn("Create: invalid menu: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := menu.Validate(); err != nil {
		s.logger.Warn("Create: menu validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.menuRepo.Create(ctx, menu)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created menu id=%d", created.ID)
	return models.FromDomainMenu(created), nil
}

// GetByID получает меню по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.MenuResponse, error) {
	s.logger.Info("GetByID: fetching menu id=%d", id)

	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			s.logger.Warn("GetByID: menu id=%d not found", id)
			return nil, ErrMenuNotFound
		}
		s.logger.Error("GetByID: repository error for menu id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMenu(menu), nil
}

// Update обновляет меню: nil-поля запроса остаются без изменений
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateMenuRequest) (*models.MenuResponse, error) {
	s.logger.Info("Update: updating menu id=%d", id)

	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			s.logger.Warn("Update: menu id=%d not found", id)
			return nil, ErrMenuNotFound
		}
		s.logger.Error("Update: repository error for menu id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := req.ApplyTo(menu); err != nil {
		s.logger.Warn("Update: invalid fields for menu id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := menu.Validate(); err != nil {
		s.logger.Warn("Update: menu validation failed for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.menuRepo.Update(ctx, menu); err != nil {
		if errors.Is(err, menuRepo.ErrMenuNotFound) {
			return nil, ErrMenuNotFound
		}
		s.logger.Error("Update: repository error for menu id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated menu id=%d", id)
	return models.FromDomainMenu(menu), nil
}

// List получает все меню
func (s *Service) List(ctx context.Context) (*models.MenuListResponse, error) {
	menus, err := s.menuRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d menus", len(menus))
	return models.FromDomainMenuList(menus), nil
}

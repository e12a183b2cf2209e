package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модели

// CreateMenuRequest запрос на создание меню бронирования
type CreateMenuRequest struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	ContactMethod     string `json:"contactMethod"`
	DurationMinutes   int    `json:"durationMinutes"`
	Mode              string `json:"mode"`
	NotificationEmail string `json:"notificationEmail"`
}

// ToDomainMenu конвертирует request в domain модель
func (r *CreateMenuRequest) ToDomainMenu() (*domain.BookingMenu, error) {
	mode, err := domain.ToMenuMode(r.Mode)
	if err != nil {
		return nil, err
	}

	return &domain.BookingMenu{
		Title:             r.Title,
		Description:       r.Description,
		ContactMethod:     r.ContactMethod,
		DurationMinutes:   r.DurationMinutes,
		Mode:              mode,
		IsActive:          true,
		NotificationEmail: r.NotificationEmail,
	}, nil
}

// UpdateMenuRequest запрос на обновление меню.
// Nil-поля остаются без изменений
type UpdateMenuRequest struct {
	Title             *string `json:"title,omitempty"`
	Description       *string `json:"description,omitempty"`
	ContactMethod     *string `json:"contactMethod,omitempty"`
	DurationMinutes   *int    `json:"durationMinutes,omitempty"`
	Mode              *string `json:"mode,omitempty"`
	IsActive          *bool   `json:"isActive,omitempty"`
	NotificationEmail *string `json:"notificationEmail,omitempty"`
}

// ApplyTo накладывает заполненные поля request на domain модель
func (r *UpdateMenuRequest) ApplyTo(menu *domain.BookingMenu) error {
	if r.Title != nil {
		menu.Title = *r.Title
	}
	if r.Description != nil {
		menu.Description = *r.Description
	}
	if r.ContactMethod != nil {
		menu.ContactMethod = *r.ContactMethod
	}
	if r.DurationMinutes != nil {
		menu.DurationMinutes = *r.DurationMinutes
	}
	if r.Mode != nil {
		mode, err := domain.ToMenuMode(*r.Mode)
		if err != nil {
			return err
		}
		menu.Mode = mode
	}
	if r.IsActive != nil {
		menu.IsActive = *r.IsActive
	}
	if r.NotificationEmail != nil {
		menu.NotificationEmail = *r.NotificationEmail
	}
	return nil
}

// Response модели

// MenuResponse ответ с данными меню
type MenuResponse struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ContactMethod     string    `json:"contactMethod"`
	DurationMinutes   int       `json:"durationMinutes"`
	Mode              string    `json:"mode"`
	IsActive          bool      `json:"isActive"`
	NotificationEmail string    `json:"notificationEmail"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// MenuListResponse ответ со списком меню
type MenuListResponse struct {
	Menus []MenuResponse `json:"menus"`
}

// FromDomainMenu конвертирует domain модель в DTO
func FromDomainMenu(m *domain.BookingMenu) *MenuResponse {
	if m == nil {
		return nil
	}

	return &MenuResponse{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		ContactMethod:     m.ContactMethod,
		DurationMinutes:   m.DurationMinutes,
		Mode:              string(m.Mode),
		IsActive:          m.IsActive,
		NotificationEmail: m.NotificationEmail,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomainMenuList конвертирует список domain моделей в DTO
func FromDomainMenuList(menus []*domain.BookingMenu) *MenuListResponse {
	resp := &MenuListResponse{
		Menus: make([]MenuResponse, 0, len(menus)),
	}

	for _, m := range menus {
		if menuResp := FromDomainMenu(m); menuResp != nil {
			resp.Menus = append(resp.Menus, *menuResp)
		}
	}

	return resp
}

package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64     `json:"id"`
	SlotID     int64     `json:"slotId"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований и счётчиками по статусам.
// Occupied - количество бронирований, занимающих место в слоте
type BookingListResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Confirmed int               `json:"confirmed"`
	Cancelled int               `json:"cancelled"`
	Pending   int               `json:"pending"`
	Occupied  int               `json:"occupied"`
}

// FromDomainBooking конвертирует доменную модель в response
func FromDomainBooking(bk *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         bk.ID,
		SlotID:     bk.SlotID,
		GuestName:  bk.GuestName,
		GuestEmail: bk.GuestEmail,
		Status:     string(bk.Status),
		CreatedAt:  bk.CreatedAt,
	}
}

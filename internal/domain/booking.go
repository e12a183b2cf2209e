package domain

import "time"

// BookingStatus represents the status of a visitor booking
type BookingStatus string

const (
	BookingStatusOK        BookingStatus = "ok"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusPending   BookingStatus = "pending"
)

// Booking belongs to exactly one slot. Bookings are created by the
// visitor-facing boundary; this service only reads them for aggregation
// and for the deletion guard.
type Booking struct {
	ID         int64
	SlotID     int64
	GuestName  string
	GuestEmail string
	Status     BookingStatus

	CreatedAt time.Time
}

// IsConfirmed returns true if the booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusOK
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// OccupiesSeat returns true if the booking counts toward slot capacity.
// Kept in sync with the storage predicates via ActiveBookingStatuses
func (b *Booking) OccupiesSeat() bool {
	for _, status := range ActiveBookingStatuses {
		if b.Status == status {
			return true
		}
	}
	return false
}

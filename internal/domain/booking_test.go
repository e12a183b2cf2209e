package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_OccupiesSeat(t *testing.T) {
	tests := []struct {
		name     string
		status   BookingStatus
		occupies bool
	}{
		{"Confirmed Occupies", BookingStatusOK, true},
		{"Pending Occupies", BookingStatusPending, true},
		{"Cancelled Frees Seat", BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bk := &Booking{Status: tt.status}
			assert.Equal(t, tt.occupies, bk.OccupiesSeat())
		})
	}
}

func TestActiveBookingStatuses(t *testing.T) {
	// Список активных статусов и предикат OccupiesSeat согласованы
	for _, status := range ActiveBookingStatuses {
		bk := &Booking{Status: status}
		assert.True(t, bk.OccupiesSeat())
	}
	assert.NotContains(t, ActiveBookingStatuses, BookingStatusCancelled)
}

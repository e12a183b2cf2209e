package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAvailability_ReservationMode(t *testing.T) {
	t.Run("Seats Remaining", func(t *testing.T) {
		slot := &Slot{MaxCapacity: 3, CurrentBookings: 2}

		av := ComputeAvailability(slot, ModeReservation)

		assert.Equal(t, 1, av.RemainingCapacity)
		assert.Equal(t, 3, av.TotalCapacity)
		assert.True(t, av.IsAvailable)
		assert.False(t, av.IsCandidate)
		assert.True(t, av.IsPartiallyBooked())
	})

	t.Run("Fully Booked", func(t *testing.T) {
		slot := &Slot{MaxCapacity: 3, CurrentBookings: 3}

		av := ComputeAvailability(slot, ModeReservation)

		assert.Equal(t, 0, av.RemainingCapacity)
		assert.False(t, av.IsAvailable)
		assert.True(t, av.IsFull())
	})

	t.Run("Overbooked Clamps To Zero", func(t *testing.T) {
		slot := &Slot{MaxCapacity: 2, CurrentBookings: 5}

		av := ComputeAvailability(slot, ModeReservation)

		assert.Equal(t, 0, av.RemainingCapacity)
		assert.False(t, av.IsAvailable)
	})

	t.Run("Untouched Slot", func(t *testing.T) {
		slot := &Slot{MaxCapacity: 4, CurrentBookings: 0}

		av := ComputeAvailability(slot, ModeReservation)

		assert.Equal(t, 4, av.RemainingCapacity)
		assert.True(t, av.IsAvailable)
		assert.False(t, av.IsPartiallyBooked())
	})
}

func TestComputeAvailability_CoordinationMode(t *testing.T) {
	// В режиме coordination ёмкость не имеет смысла:
	// каждый слот просто кандидатное время
	slot := &Slot{MaxCapacity: 1, CurrentBookings: 7}

	av := ComputeAvailability(slot, ModeCoordination)

	assert.True(t, av.IsAvailable)
	assert.True(t, av.IsCandidate)
	assert.False(t, av.IsFull())
	assert.Zero(t, av.RemainingCapacity)
}

func TestSlotAvailability_OccupancyRate(t *testing.T) {
	tests := []struct {
		name string
		av   SlotAvailability
		want float64
	}{
		{"half occupied", SlotAvailability{RemainingCapacity: 2, TotalCapacity: 4}, 50},
		{"empty", SlotAvailability{RemainingCapacity: 4, TotalCapacity: 4}, 0},
		{"full", SlotAvailability{RemainingCapacity: 0, TotalCapacity: 4}, 100},
		{"candidate has no rate", SlotAvailability{IsCandidate: true}, 0},
		{"zero capacity", SlotAvailability{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.av.OccupancyRate(), 0.001)
		})
	}
}

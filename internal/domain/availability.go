package domain

// SlotAvailability derived availability of a single slot under the active
// scheduling mode
type SlotAvailability struct {
	RemainingCapacity int  // meaningful only in reservation mode
	TotalCapacity     int  // meaningful only in reservation mode
	IsAvailable       bool // reservation: seats left; coordination: always a candidate
	IsCandidate       bool // coordination mode marker
}

// ComputeAvailability derives availability from a slot and the menu mode.
//
// Reservation mode: remaining = max(0, maxCapacity - currentBookings),
// the slot is available while remaining > 0.
//
// Coordination mode: capacity is not meaningful, every slot is simply a
// candidate time and counts as one candidate at day level.
func ComputeAvailability(slot *Slot, mode MenuMode) SlotAvailability {
	if mode == ModeCoordination {
		return SlotAvailability{
			IsAvailable: true,
			IsCandidate: true,
		}
	}

	remaining := slot.MaxCapacity - slot.CurrentBookings
	if remaining < 0 {
		remaining = 0
	}

	return SlotAvailability{
		RemainingCapacity: remaining,
		TotalCapacity:     slot.MaxCapacity,
		IsAvailable:       remaining > 0,
	}
}

// IsFull returns true if the slot has no remaining capacity
func (a SlotAvailability) IsFull() bool {
	return !a.IsCandidate && a.RemainingCapacity <= 0
}

// IsPartiallyBooked returns true if some but not all seats are taken
func (a SlotAvailability) IsPartiallyBooked() bool {
	return !a.IsCandidate && a.RemainingCapacity > 0 && a.RemainingCapacity < a.TotalCapacity
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (a SlotAvailability) OccupancyRate() float64 {
	if a.IsCandidate || a.TotalCapacity == 0 {
		return 0
	}
	occupied := a.TotalCapacity - a.RemainingCapacity
	return float64(occupied) / float64(a.TotalCapacity) * 100
}

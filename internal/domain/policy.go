package domain

import "math"

// SlotPolicy is the capacity strategy of a court, selected once per sport.
// It owns the two places where exclusive and shared courts genuinely
// differ: how many occupants fit into an interval and how court time is
// billed. Everything else treats both kinds uniformly.
type SlotPolicy interface {
	// Capacity returns the maximum simultaneous occupants.
	Capacity() int
	// AvailableSlots returns how many occupancy units remain given the
	// units already consumed by overlapping bookings.
	AvailableSlots(consumed int) int
	// CourtPrice returns the base price of court time for one occupancy
	// unit, before the slots multiplier, discount and accessories.
	CourtPrice(hourlyRate float64, durationMinutes int) float64
}

// PolicyFor selects the policy matching the sport capacity.
func PolicyFor(capacity int) SlotPolicy {
	if capacity > 1 {
		return SharedCourtPolicy{capacity: capacity}
	}
	return ExclusiveCourtPolicy{}
}

// ExclusiveCourtPolicy is the capacity-1 strategy: one booking owns the
// whole court and time is billed linearly in fractional hours.
type ExclusiveCourtPolicy struct{}

func (ExclusiveCourtPolicy) Capacity() int { return 1 }

func (ExclusiveCourtPolicy) AvailableSlots(consumed int) int {
	if consumed >= 1 {
		return 0
	}
	return 1
}

func (ExclusiveCourtPolicy) CourtPrice(hourlyRate float64, durationMinutes int) float64 {
	return float64(durationMinutes) / 60.0 * hourlyRate
}

// SharedCourtPolicy is the capacity-N strategy: up to N independent
// bookings share the interval and time is billed in 30-minute increments.
// Anything under half an hour is free.
type SharedCourtPolicy struct {
	capacity int
}

func (p SharedCourtPolicy) Capacity() int { return p.capacity }

func (p SharedCourtPolicy) AvailableSlots(consumed int) int {
	remaining := p.capacity - consumed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (p SharedCourtPolicy) CourtPrice(hourlyRate float64, durationMinutes int) float64 {
	if durationMinutes < 30 {
		return 0
	}
	price := math.Floor(float64(durationMinutes)/60.0) * hourlyRate
	if durationMinutes%60 >= 30 {
		price += hourlyRate / 2
	}
	return price
}

// ComputeBookingPrice computes the authoritative total for a booking.
// The discount applies only to the court component, never to accessories.
// Pure: identical inputs always produce identical output.
func ComputeBookingPrice(policy SlotPolicy, hourlyRate float64, durationMinutes, slotsBooked int, accessoriesTotal, discount float64) float64 {
	basePrice := policy.CourtPrice(hourlyRate, durationMinutes)
	if slotsBooked > 1 {
		basePrice *= float64(slotsBooked)
	}
	return basePrice - discount + accessoriesTotal
}

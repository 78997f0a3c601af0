package domain

import "fmt"

// Availability is the resolved state of one (court, interval) query.
type Availability struct {
	IsAvailable    bool
	AvailableSlots int
	// Override is set when the court status blocks bookings entirely;
	// in that case no slot count is computed.
	Override *CourtStatus
}

// ConsumedSlots суммирует slots_booked активных бронирований,
// пересекающихся с интервалом (полуоткрытая семантика: граничащие
// интервалы пересечением не считаются)
func ConsumedSlots(bookings []*Booking, interval Interval) int {
	consumed := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Interval.Overlaps(interval) {
			consumed += b.SlotsBooked
		}
	}
	return consumed
}

// OverlappingBookings возвращает активные бронирования, пересекающиеся
// с интервалом
func OverlappingBookings(bookings []*Booking, interval Interval) []*Booking {
	overlapping := make([]*Booking, 0)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Interval.Overlaps(interval) {
			overlapping = append(overlapping, b)
		}
	}
	return overlapping
}

// ResolveAvailability decides whether a candidate interval on a court can
// host `requested` more occupancy units given the court's existing
// bookings for the day. This is the single source of overlap/capacity
// truth: the live conflict check and the heatmap both go through it, so
// the two can never diverge.
func ResolveAvailability(status CourtStatus, policy SlotPolicy, bookings []*Booking, interval Interval, requested int) Availability {
	if status.IsOverride() {
		st := status
		return Availability{IsAvailable: false, Override: &st}
	}

	available := policy.AvailableSlots(ConsumedSlots(bookings, interval))
	return Availability{
		IsAvailable:    available > 0 && requested <= available,
		AvailableSlots: available,
	}
}

// SlotConflictError reports a capacity/exclusivity violation and carries
// how many occupancy units are still free, so callers can offer an
// alternative without re-querying.
type SlotConflictError struct {
	AvailableSlots int
	Capacity       int
}

func (e *SlotConflictError) Error() string {
	if e.Capacity > 1 {
		return fmt.Sprintf("Not enough slots available. Only %d slots left.", e.AvailableSlots)
	}
	return "The selected time slot is unavailable."
}

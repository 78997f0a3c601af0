package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end int) Interval {
	t.Helper()
	iv, err := NewIntervalFromMinutes(start, end)
	require.NoError(t, err)
	return iv
}

func activeBooking(t *testing.T, start, end, slots int) *Booking {
	t.Helper()
	return &Booking{
		Interval:    mustInterval(t, start, end),
		SlotsBooked: slots,
		Status:      StatusBooked,
	}
}

func TestConsumedSlots(t *testing.T) {
	query := mustInterval(t, 9*60, 10*60)

	t.Run("SumsOverlappingActive", func(t *testing.T) {
		bookings := []*Booking{
			activeBooking(t, 9*60, 10*60, 2),
			activeBooking(t, 9*60+30, 11*60, 1),
			activeBooking(t, 14*60, 15*60, 3), // не пересекается
		}
		assert.Equal(t, 3, ConsumedSlots(bookings, query))
	})

	t.Run("IgnoresCancelled", func(t *testing.T) {
		cancelled := activeBooking(t, 9*60, 10*60, 2)
		cancelled.Status = StatusCancelled
		bookings := []*Booking{cancelled, activeBooking(t, 9*60, 10*60, 1)}
		assert.Equal(t, 1, ConsumedSlots(bookings, query))
	})

	t.Run("TouchingDoesNotCount", func(t *testing.T) {
		bookings := []*Booking{
			activeBooking(t, 8*60, 9*60, 2),
			activeBooking(t, 10*60, 11*60, 2),
		}
		assert.Equal(t, 0, ConsumedSlots(bookings, query))
	})
}

func TestResolveAvailability(t *testing.T) {
	query := mustInterval(t, 9*60, 10*60)

	t.Run("OverrideBlocksEverything", func(t *testing.T) {
		avail := ResolveAvailability(CourtUnderMaintenance, PolicyFor(4), nil, query, 1)
		assert.False(t, avail.IsAvailable)
		require.NotNil(t, avail.Override)
		assert.Equal(t, CourtUnderMaintenance, *avail.Override)
	})

	t.Run("ExclusiveCourtFree", func(t *testing.T) {
		avail := ResolveAvailability(CourtAvailable, PolicyFor(1), nil, query, 1)
		assert.True(t, avail.IsAvailable)
		assert.Equal(t, 1, avail.AvailableSlots)
	})

	t.Run("ExclusiveCourtOccupied", func(t *testing.T) {
		bookings := []*Booking{activeBooking(t, 9*60+30, 10*60+30, 1)}
		avail := ResolveAvailability(CourtAvailable, PolicyFor(1), bookings, query, 1)
		assert.False(t, avail.IsAvailable)
		assert.Equal(t, 0, avail.AvailableSlots)
	})

	t.Run("SharedCourtPartiallyOccupied", func(t *testing.T) {
		bookings := []*Booking{activeBooking(t, 9*60, 10*60, 2)}
		avail := ResolveAvailability(CourtAvailable, PolicyFor(4), bookings, query, 2)
		assert.True(t, avail.IsAvailable)
		assert.Equal(t, 2, avail.AvailableSlots)
	})

	t.Run("SharedCourtNotEnoughSlots", func(t *testing.T) {
		bookings := []*Booking{activeBooking(t, 9*60, 10*60, 3)}
		avail := ResolveAvailability(CourtAvailable, PolicyFor(4), bookings, query, 2)
		assert.False(t, avail.IsAvailable)
		assert.Equal(t, 1, avail.AvailableSlots)
	})
}

func TestSlotConflictError(t *testing.T) {
	shared := &SlotConflictError{AvailableSlots: 2, Capacity: 4}
	assert.Equal(t, "Not enough slots available. Only 2 slots left.", shared.Error())

	exclusive := &SlotConflictError{AvailableSlots: 0, Capacity: 1}
	assert.Equal(t, "The selected time slot is unavailable.", exclusive.Error())
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name       string
		totalPrice float64
		amountPaid float64
		want       PaymentStatus
	}{
		{"NothingPaid", 1000, 0, PaymentPending},
		{"PartiallyPaid", 1000, 400, PaymentReceived},
		{"FullyPaid", 1000, 1000, PaymentCompleted},
		{"ZeroTotal", 0, 0, PaymentCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePaymentStatus(tt.totalPrice, tt.amountPaid))
		})
	}
}

func TestCourtStatus(t *testing.T) {
	t.Run("Override", func(t *testing.T) {
		assert.False(t, CourtAvailable.IsOverride())
		for _, st := range OverrideStatuses {
			assert.True(t, st.IsOverride(), "status %s", st)
		}
	})

	t.Run("Valid", func(t *testing.T) {
		assert.True(t, CourtAvailable.IsValid())
		assert.True(t, CourtTournament.IsValid())
		assert.False(t, CourtStatus("Closed").IsValid())
	})
}

func TestAccessoriesTotal(t *testing.T) {
	lines := []AccessoryLine{
		{AccessoryID: 1, Quantity: 2, PriceAtBooking: 50},
		{AccessoryID: 2, Quantity: 1, PriceAtBooking: 120},
	}
	assert.InDelta(t, 220.0, AccessoriesTotal(lines), 0.001)
	assert.InDelta(t, 0.0, AccessoriesTotal(nil), 0.001)
}

func TestBookingLifecycle(t *testing.T) {
	b := &Booking{Status: StatusBooked}
	assert.True(t, b.IsActive())
	assert.False(t, b.IsCancelled())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.True(t, b.IsCancelled())
}

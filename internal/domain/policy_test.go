package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyFor(t *testing.T) {
	assert.IsType(t, ExclusiveCourtPolicy{}, PolicyFor(1))
	assert.IsType(t, ExclusiveCourtPolicy{}, PolicyFor(0))
	assert.IsType(t, SharedCourtPolicy{}, PolicyFor(4))
	assert.Equal(t, 4, PolicyFor(4).Capacity())
}

func TestExclusiveCourtPolicy(t *testing.T) {
	policy := ExclusiveCourtPolicy{}

	t.Run("AvailableSlots", func(t *testing.T) {
		assert.Equal(t, 1, policy.AvailableSlots(0))
		assert.Equal(t, 0, policy.AvailableSlots(1))
		assert.Equal(t, 0, policy.AvailableSlots(3))
	})

	t.Run("LinearFractionalPricing", func(t *testing.T) {
		// 90 минут по 500/час = 750
		assert.InDelta(t, 750.0, policy.CourtPrice(500, 90), 0.001)
		assert.InDelta(t, 500.0, policy.CourtPrice(500, 60), 0.001)
		// Даже 15 минут оплачиваются пропорционально
		assert.InDelta(t, 125.0, policy.CourtPrice(500, 15), 0.001)
	})
}

func TestSharedCourtPolicy(t *testing.T) {
	policy := SharedCourtPolicy{capacity: 4}

	t.Run("AvailableSlots", func(t *testing.T) {
		assert.Equal(t, 4, policy.AvailableSlots(0))
		assert.Equal(t, 2, policy.AvailableSlots(2))
		assert.Equal(t, 0, policy.AvailableSlots(4))
		assert.Equal(t, 0, policy.AvailableSlots(7))
	})

	t.Run("HalfHourIncrementPricing", func(t *testing.T) {
		// Меньше получаса - бесплатно
		assert.InDelta(t, 0.0, policy.CourtPrice(200, 29), 0.001)
		assert.InDelta(t, 100.0, policy.CourtPrice(200, 30), 0.001)
		assert.InDelta(t, 100.0, policy.CourtPrice(200, 59), 0.001)
		assert.InDelta(t, 200.0, policy.CourtPrice(200, 60), 0.001)
		// 90 минут = 1.5 часа
		assert.InDelta(t, 300.0, policy.CourtPrice(200, 90), 0.001)
		// 100 минут округляются вниз до 1.5 часа
		assert.InDelta(t, 300.0, policy.CourtPrice(200, 100), 0.001)
	})
}

func TestComputeBookingPrice(t *testing.T) {
	t.Run("ExclusiveCourtWithAccessories", func(t *testing.T) {
		// 1.5 часа по 500/час = 750, скидка 50, аксессуары 120
		total := ComputeBookingPrice(ExclusiveCourtPolicy{}, 500, 90, 1, 120, 50)
		assert.InDelta(t, 820.0, total, 0.001)
	})

	t.Run("SlotsMultiplierAppliesToCourtOnly", func(t *testing.T) {
		// 2 слота на шеринговом корте: 60 минут по 200 = 200, х2 = 400.
		// Аксессуары множителем не затрагиваются
		total := ComputeBookingPrice(SharedCourtPolicy{capacity: 4}, 200, 60, 2, 100, 0)
		assert.InDelta(t, 500.0, total, 0.001)
	})

	t.Run("DiscountDoesNotTouchAccessories", func(t *testing.T) {
		// Скидка вычитается из стоимости корта, аксессуары добавляются после
		total := ComputeBookingPrice(ExclusiveCourtPolicy{}, 400, 60, 1, 150, 400)
		assert.InDelta(t, 150.0, total, 0.001)
	})

	t.Run("SingleSlotNoMultiplier", func(t *testing.T) {
		total := ComputeBookingPrice(SharedCourtPolicy{capacity: 6}, 300, 90, 1, 0, 0)
		assert.InDelta(t, 450.0, total, 0.001)
	})
}

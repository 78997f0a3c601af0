package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

func TestNewInterval(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		iv, err := NewInterval(types.TimeString("09:00"), types.TimeString("10:30"))
		require.NoError(t, err)
		assert.Equal(t, 9*60, iv.StartMinutes)
		assert.Equal(t, 10*60+30, iv.EndMinutes)
		assert.Equal(t, 90, iv.DurationMinutes())
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := NewInterval(types.TimeString("10:00"), types.TimeString("09:00"))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("ZeroLength", func(t *testing.T) {
		_, err := NewInterval(types.TimeString("10:00"), types.TimeString("10:00"))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("MalformedTime", func(t *testing.T) {
		_, err := NewInterval(types.TimeString("25:00"), types.TimeString("26:00"))
		assert.Error(t, err)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	base, err := NewIntervalFromMinutes(9*60, 10*60)
	require.NoError(t, err)

	tests := []struct {
		name    string
		start   int
		end     int
		overlap bool
	}{
		{"Identical", 9 * 60, 10 * 60, true},
		{"PartialLeft", 8*60 + 30, 9*60 + 30, true},
		{"PartialRight", 9*60 + 30, 10*60 + 30, true},
		{"ContainedInside", 9*60 + 15, 9*60 + 45, true},
		{"Surrounding", 8 * 60, 11 * 60, true},
		{"TouchingBefore", 8 * 60, 9 * 60, false},
		{"TouchingAfter", 10 * 60, 11 * 60, false},
		{"Disjoint", 14 * 60, 15 * 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other, err := NewIntervalFromMinutes(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.overlap, base.Overlaps(other))
			assert.Equal(t, tt.overlap, other.Overlaps(base))
		})
	}
}

func TestIntervalExtended(t *testing.T) {
	iv, err := NewIntervalFromMinutes(18*60, 19*60)
	require.NoError(t, err)

	extended, err := iv.Extended(30)
	require.NoError(t, err)
	assert.Equal(t, 18*60, extended.StartMinutes)
	assert.Equal(t, 19*60+30, extended.EndMinutes)

	_, err = iv.Extended(6 * 60)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestParseSlotLabel(t *testing.T) {
	t.Run("12Hour", func(t *testing.T) {
		iv, err := ParseSlotLabel("9:00 AM - 10:00 AM")
		require.NoError(t, err)
		assert.Equal(t, 9*60, iv.StartMinutes)
		assert.Equal(t, 10*60, iv.EndMinutes)
	})

	t.Run("24Hour", func(t *testing.T) {
		iv, err := ParseSlotLabel("17:30 - 19:00")
		require.NoError(t, err)
		assert.Equal(t, 17*60+30, iv.StartMinutes)
		assert.Equal(t, 19*60, iv.EndMinutes)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, label := range []string{"", "9:00 AM", "9:00 AM - ", "foo - bar", "10:00 - 09:00"} {
			_, err := ParseSlotLabel(label)
			assert.Error(t, err, "label %q", label)
		}
	})
}

func TestIntervalLabel(t *testing.T) {
	iv, err := NewIntervalFromMinutes(9*60, 10*60)
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM - 10:00 AM", iv.Label())

	iv, err = NewIntervalFromMinutes(11*60+30, 13*60)
	require.NoError(t, err)
	assert.Equal(t, "11:30 AM - 1:00 PM", iv.Label())
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeLabel(t *testing.T) {
	t.Run("24HourFormat", func(t *testing.T) {
		minutes, err := ParseTimeLabel("14:30")
		require.NoError(t, err)
		assert.Equal(t, 14*60+30, minutes)
	})

	t.Run("12HourFormat", func(t *testing.T) {
		minutes, err := ParseTimeLabel("2:30 PM")
		require.NoError(t, err)
		assert.Equal(t, 14*60+30, minutes)

		minutes, err = ParseTimeLabel("9:05 am")
		require.NoError(t, err)
		assert.Equal(t, 9*60+5, minutes)
	})

	t.Run("NoonAndMidnight", func(t *testing.T) {
		minutes, err := ParseTimeLabel("12:00 PM")
		require.NoError(t, err)
		assert.Equal(t, 12*60, minutes)

		minutes, err = ParseTimeLabel("12:00 AM")
		require.NoError(t, err)
		assert.Equal(t, 0, minutes)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, input := range []string{"", "abc", "25:00", "10:75", "13:00 PM", "10:5"} {
			_, err := ParseTimeLabel(input)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", input)
		}
	})
}

func TestTimeString(t *testing.T) {
	t.Run("FromMinutes", func(t *testing.T) {
		ts, err := FromMinutes(9*60 + 30)
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())

		// Граница суток представима как 00:00
		ts, err = FromMinutes(24 * 60)
		require.NoError(t, err)
		assert.Equal(t, "00:00", ts.String())

		_, err = FromMinutes(-1)
		assert.ErrorIs(t, err, ErrMinutesOutOfRange)
		_, err = FromMinutes(24*60 + 1)
		assert.ErrorIs(t, err, ErrMinutesOutOfRange)
	})

	t.Run("Minutes", func(t *testing.T) {
		assert.Equal(t, 17*60+45, TimeString("17:45").Minutes())
		assert.Equal(t, 0, TimeString("00:00").Minutes())
	})

	t.Run("Validate", func(t *testing.T) {
		assert.NoError(t, TimeString("08:00").Validate())
		assert.Error(t, TimeString("8:00 AM").Validate())
		assert.Error(t, TimeString("").Validate())
	})

	t.Run("Comparisons", func(t *testing.T) {
		assert.True(t, TimeString("09:00").IsBefore("10:00"))
		assert.False(t, TimeString("10:00").IsBefore("10:00"))
		assert.True(t, TimeString("11:00").IsAfter("10:30"))
	})

	t.Run("AddMinutes", func(t *testing.T) {
		ts, err := TimeString("22:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, "23:30", ts.String())

		_, err = TimeString("23:30").AddMinutes(60)
		assert.ErrorIs(t, err, ErrMinutesOutOfRange)
	})

	t.Run("Format12Hour", func(t *testing.T) {
		assert.Equal(t, "9:05 AM", TimeString("09:05").Format12Hour())
		assert.Equal(t, "12:00 PM", TimeString("12:00").Format12Hour())
		assert.Equal(t, "12:30 AM", TimeString("00:30").Format12Hour())
		assert.Equal(t, "11:45 PM", TimeString("23:45").Format12Hour())
	})

	t.Run("RoundTripThroughLabel", func(t *testing.T) {
		ts, err := NewTimeStringFromString("6:30 PM")
		require.NoError(t, err)
		assert.Equal(t, "18:30", ts.String())
		assert.Equal(t, "6:30 PM", ts.Format12Hour())
	})
}

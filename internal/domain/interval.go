package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

var (
	// ErrInvalidInterval returned when end is not strictly after start.
	ErrInvalidInterval = errors.New("domain: end time must be after start time")

	// ErrInvalidSlotLabel returned when a stored slot label cannot be parsed.
	ErrInvalidSlotLabel = errors.New("domain: invalid time slot label")
)

// Interval is a half-open [Start, End) time-of-day interval measured in
// minutes since midnight. Bookings store intervals structurally; the
// 12-hour "9:00 AM - 10:00 AM" label exists only at the API boundary.
type Interval struct {
	StartMinutes int
	EndMinutes   int
}

// NewInterval builds a validated interval from two time strings.
func NewInterval(start, end types.TimeString) (Interval, error) {
	if err := start.Validate(); err != nil {
		return Interval{}, err
	}
	if err := end.Validate(); err != nil {
		return Interval{}, err
	}
	return NewIntervalFromMinutes(start.Minutes(), end.Minutes())
}

// NewIntervalFromMinutes builds a validated interval from minute offsets.
func NewIntervalFromMinutes(start, end int) (Interval, error) {
	if end <= start {
		return Interval{}, fmt.Errorf("%w: start=%d end=%d", ErrInvalidInterval, start, end)
	}
	if start < 0 || end > 24*60 {
		return Interval{}, fmt.Errorf("%w: start=%d end=%d", ErrInvalidInterval, start, end)
	}
	return Interval{StartMinutes: start, EndMinutes: end}, nil
}

// ParseSlotLabel parses a stored "<start> - <end>" label where both sides
// are 12-hour ("9:00 AM") or 24-hour ("09:00") time labels.
func ParseSlotLabel(label string) (Interval, error) {
	parts := strings.Split(label, " - ")
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	start, err := types.ParseTimeLabel(strings.TrimSpace(parts[0]))
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %q: %v", ErrInvalidSlotLabel, label, err)
	}
	end, err := types.ParseTimeLabel(strings.TrimSpace(parts[1]))
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %q: %v", ErrInvalidSlotLabel, label, err)
	}

	return NewIntervalFromMinutes(start, end)
}

// DurationMinutes returns the interval length in minutes.
func (i Interval) DurationMinutes() int {
	return i.EndMinutes - i.StartMinutes
}

// Overlaps reports whether two half-open intervals share at least one
// instant. Touching intervals (9:00-10:00 and 10:00-11:00) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.StartMinutes < other.EndMinutes && i.EndMinutes > other.StartMinutes
}

// Contains reports whether the minute offset falls inside the interval.
func (i Interval) Contains(minute int) bool {
	return minute >= i.StartMinutes && minute < i.EndMinutes
}

// Extended returns the interval with the end pushed out by extraMinutes.
func (i Interval) Extended(extraMinutes int) (Interval, error) {
	return NewIntervalFromMinutes(i.StartMinutes, i.EndMinutes+extraMinutes)
}

// Start returns the start as a TimeString.
func (i Interval) Start() types.TimeString {
	t, _ := types.FromMinutes(i.StartMinutes)
	return t
}

// End returns the end as a TimeString.
func (i Interval) End() types.TimeString {
	t, _ := types.FromMinutes(i.EndMinutes)
	return t
}

// Label returns the display form, e.g. "9:00 AM - 10:00 AM".
func (i Interval) Label() string {
	return fmt.Sprintf("%s - %s", i.Start().Format12Hour(), i.End().Format12Hour())
}

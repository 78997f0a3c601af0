package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a wall-clock time of day as a canonical "HH:MM"
// 24-hour string. The zero value is the empty string.
type TimeString string

const timeStringLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается, когда строка времени не распознана
	ErrInvalidTimeString = errors.New("types: invalid time string format")

	// ErrMinutesOutOfRange возвращается, когда время выходит за границы суток
	ErrMinutesOutOfRange = errors.New("types: minutes out of day range")
)

// Принимает как 24-часовой формат ("14:30"), так и 12-часовой ("2:30 PM").
var timeLabelRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*([AaPp][Mm]))?$`)

// NewTimeString creates a TimeString from the clock component of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses a "HH:MM" or "H:MM AM/PM" label.
// Malformed input is a hard error, never a silent midnight fallback.
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := ParseTimeLabel(s)
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes)
}

// FromMinutes converts minutes-since-midnight to a TimeString.
// 1440 is accepted so a day-end bound of 24:00 stays representable as 00:00.
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > 24*60 {
		return "", fmt.Errorf("%w: %d", ErrMinutesOutOfRange, minutes)
	}
	m := minutes % (24 * 60)
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// ParseTimeLabel parses a "H:MM AM/PM" or "HH:MM" label into minutes since
// midnight. "12:xx AM" maps to 0:xx, "12:xx PM" stays 12:xx.
func ParseTimeLabel(s string) (int, error) {
	parts := timeLabelRe.FindStringSubmatch(strings.TrimSpace(s))
	if parts == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minutes, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	modifier := strings.ToUpper(parts[3])
	switch modifier {
	case "PM":
		if hours > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
		if hours < 12 {
			hours += 12
		}
	case "AM":
		if hours > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
		if hours == 12 {
			hours = 0
		}
	default:
		if hours > 23 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	return hours*60 + minutes, nil
}

// Validate проверяет, что значение является корректным "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero returns true for the empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes returns minutes since midnight. The value must be valid;
// call Validate first on untrusted input.
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore returns true if t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter returns true if t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes возвращает время через delta минут; выход за полночь — ошибка
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return FromMinutes(t.Minutes() + delta)
}

// String returns the canonical "HH:MM" form.
func (t TimeString) String() string {
	return string(t)
}

// Format12Hour returns the display form, e.g. "9:05 AM", "12:00 PM" for
// noon and "12:00 AM" for midnight.
func (t TimeString) Format12Hour() string {
	if err := t.Validate(); err != nil {
		return ""
	}
	total := t.Minutes()
	hours := total / 60
	minutes := total % 60

	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours, minutes, ampm)
}

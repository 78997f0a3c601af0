package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Heatmap defaults
const (
	// HeatmapBucketMinutes ширина ячейки теплокарты
	HeatmapBucketMinutes = 30

	// DefaultDayStartMinutes начало сетки по умолчанию (05:00)
	DefaultDayStartMinutes = 5 * 60

	// DefaultDayEndMinutes конец сетки по умолчанию (23:00)
	DefaultDayEndMinutes = 23 * 60
)

// Business validation constants
const (
	MaxSlotsPerBooking       = 100
	MaxCustomerNameLength    = 200
	MaxDiscountReasonLength  = 500
	MaxExtendDurationMinutes = 12 * 60
)

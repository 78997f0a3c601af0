package extend_booking

import (
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
)

// Request модель запроса на продление бронирования
type Request struct {
	BookingID    int64
	ExtraMinutes int // на сколько минут сдвигается конец интервала
}

// Response модель ответа с продленным бронированием
type Response struct {
	ID            int64
	CourtID       int64
	Date          time.Time
	Interval      domain.Interval
	TimeSlot      string
	SlotsBooked   int
	TotalPrice    float64
	AmountPaid    float64
	BalanceAmount float64
	PaymentStatus string
	UpdatedAt     time.Time
}

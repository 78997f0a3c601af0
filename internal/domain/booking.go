package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusBooked    BookingStatus = "Booked"
	StatusCancelled BookingStatus = "Cancelled"
)

// PaymentStatus is derived from the booking balance, never set directly
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentReceived  PaymentStatus = "Received"
	PaymentCompleted PaymentStatus = "Completed"
)

// Booking represents a court reservation.
// Invariants maintained by every committed transaction:
// AmountPaid == sum of the booking's payments, BalanceAmount ==
// TotalPrice - AmountPaid, AmountPaid never exceeds TotalPrice.
type Booking struct {
	ID              int64
	CourtID         int64
	SportID         int64
	CreatedByUserID *int64
	CustomerName    string
	CustomerContact *string
	CustomerEmail   *string
	Date            time.Time
	Interval        Interval
	SlotsBooked     int
	TotalPrice      float64
	AmountPaid      float64
	BalanceAmount   float64
	PaymentStatus   PaymentStatus
	PaymentMode     *string
	PaymentID       *string
	Status          BookingStatus
	DiscountAmount  float64
	DiscountReason  *string
	IsRescheduled   bool

	// Denormalized for listings
	CourtName     string
	SportName     string
	CreatedByUser *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still consumes capacity.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// TimeSlotLabel returns the display form of the interval.
func (b *Booking) TimeSlotLabel() string {
	return b.Interval.Label()
}

// DerivePaymentStatus computes the payment status from total and paid:
// fully covered is Completed, anything collected is Received, else Pending.
func DerivePaymentStatus(totalPrice, amountPaid float64) PaymentStatus {
	switch {
	case totalPrice-amountPaid <= 0:
		return PaymentCompleted
	case amountPaid > 0:
		return PaymentReceived
	default:
		return PaymentPending
	}
}

// Payment is one append-only ledger entry against a booking.
type Payment struct {
	ID              int64
	BookingID       int64
	Amount          float64
	PaymentMode     string
	PaymentID       *string // external reference (transaction/cheque id)
	CreatedByUserID *int64
	CreatedByUser   *string
	PaymentDate     time.Time
}

// AccessoryLine is an accessory attached to a booking with the unit price
// snapshotted at booking time. Later accessory price changes never alter
// past bookings.
type AccessoryLine struct {
	BookingID      int64
	AccessoryID    int64
	AccessoryName  string
	Quantity       int
	PriceAtBooking float64
}

// AccessoriesTotal суммирует строки аксессуаров по снапшот-ценам
func AccessoriesTotal(lines []AccessoryLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += float64(line.Quantity) * line.PriceAtBooking
	}
	return total
}

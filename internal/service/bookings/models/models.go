package models

import (
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
)

// PaymentEntry запись леджера платежей в ответе
type PaymentEntry struct {
	ID          int64
	Amount      float64
	PaymentMode string
	PaymentID   *string
	CreatedBy   *string
	PaymentDate time.Time
}

// AccessoryEntry строка аксессуара в ответе
type AccessoryEntry struct {
	AccessoryID   int64
	AccessoryName string
	Quantity      int
	Price         float64
	LineTotal     float64
}

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
	ID              int64
	CourtID         int64
	CourtName       string
	SportName       string
	CustomerName    string
	CustomerContact *string
	CustomerEmail   *string
	CreatedByUser   *string
	Date            time.Time
	Interval        domain.Interval
	TimeSlot        string
	SlotsBooked     int
	TotalPrice      float64
	AmountPaid      float64
	BalanceAmount   float64
	PaymentStatus   string
	Status          string
	DiscountAmount  float64
	DiscountReason  *string
	IsRescheduled   bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookingDetailsResponse бронирование с леджером платежей и аксессуарами
type BookingDetailsResponse struct {
	BookingResponse
	Payments    []PaymentEntry
	Accessories []AccessoryEntry
}

// BookingListResponse список бронирований на дату
type BookingListResponse struct {
	Date     time.Time
	Bookings []BookingResponse
}

// FromDomainBooking конвертирует domain модель в ответ сервиса
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		CourtID:         b.CourtID,
		CourtName:       b.CourtName,
		SportName:       b.SportName,
		CustomerName:    b.CustomerName,
		CustomerContact: b.CustomerContact,
		CustomerEmail:   b.CustomerEmail,
		CreatedByUser:   b.CreatedByUser,
		Date:            b.Date,
		Interval:        b.Interval,
		TimeSlot:        b.TimeSlotLabel(),
		SlotsBooked:     b.SlotsBooked,
		TotalPrice:      b.TotalPrice,
		AmountPaid:      b.AmountPaid,
		BalanceAmount:   b.BalanceAmount,
		PaymentStatus:   string(b.PaymentStatus),
		Status:          string(b.Status),
		DiscountAmount:  b.DiscountAmount,
		DiscountReason:  b.DiscountReason,
		IsRescheduled:   b.IsRescheduled,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainPayments конвертирует записи леджера
func FromDomainPayments(payments []*domain.Payment) []PaymentEntry {
	entries := make([]PaymentEntry, 0, len(payments))
	for _, p := range payments {
		entries = append(entries, PaymentEntry{
			ID:          p.ID,
			Amount:      p.Amount,
			PaymentMode: p.PaymentMode,
			PaymentID:   p.PaymentID,
			CreatedBy:   p.CreatedByUser,
			PaymentDate: p.PaymentDate,
		})
	}
	return entries
}

// FromDomainAccessoryLines конвертирует строки аксессуаров
func FromDomainAccessoryLines(lines []domain.AccessoryLine) []AccessoryEntry {
	entries := make([]AccessoryEntry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, AccessoryEntry{
			AccessoryID:   line.AccessoryID,
			AccessoryName: line.AccessoryName,
			Quantity:      line.Quantity,
			Price:         line.PriceAtBooking,
			LineTotal:     float64(line.Quantity) * line.PriceAtBooking,
		})
	}
	return entries
}

package update_booking

import (
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

// AccessoryItem запрошенный аксессуар
type AccessoryItem struct {
	AccessoryID int64
	Quantity    int
}

// PaymentItem платеж, вносимый вместе с изменением бронирования
type PaymentItem struct {
	Amount      float64
	PaymentMode string
	PaymentID   *string
}

// Request модель запроса на изменение бронирования.
// Дата, интервал, слоты, скидка и аксессуары задаются целиком:
// перенос на новое время проходит ту же проверку конфликтов, что и
// создание, но без учета самого изменяемого бронирования.
// StagedPayments дописываются в леджер в той же транзакции, что и
// перенос - частичная фиксация невозможна.
type Request struct {
	BookingID       int64
	CustomerName    string
	CustomerContact *string
	CustomerEmail   *string
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	SlotsBooked     int
	DiscountAmount  float64
	DiscountReason  *string
	Accessories     []AccessoryItem
	StagedPayments  []PaymentItem
}

// AccessoryLine строка аксессуара в ответе
type AccessoryLine struct {
	AccessoryID   int64
	AccessoryName string
	Quantity      int
	Price         float64
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID              int64
	CourtID         int64
	CustomerName    string
	CustomerContact *string
	CustomerEmail   *string
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
	Accessories     []AccessoryLine
	UpdatedAt       time.Time
}

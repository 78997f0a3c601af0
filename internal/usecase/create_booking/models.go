package create_booking

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

// Request модель запроса на создание бронирования
type Request struct {
	CourtID         int64            // ID корта
	CreatedByUserID *int64           // ID сотрудника, создающего бронирование
	CustomerName    string           // Имя клиента
	CustomerContact *string          // Телефон клиента (опционально)
	CustomerEmail   *string          // Email клиента (опционально)
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	EndTime         types.TimeString // Время окончания
	SlotsBooked     int              // Количество слотов (для кортов с емкостью > 1)
	AmountPaid      float64          // Начальный платеж (может быть 0)
	PaymentMode     *string          // Способ оплаты начального платежа
	PaymentID       *string          // Внешний идентификатор платежа
	DiscountAmount  float64          // Скидка (применяется только к стоимости корта)
	DiscountReason  *string          // Причина скидки
	Accessories     []AccessoryItem  // Арендуемые аксессуары
}

// AccessoryLine строка аксессуара в ответе (цена зафиксирована на момент бронирования)
type AccessoryLine struct {
	AccessoryID   int64
	AccessoryName string
	Quantity      int
	Price         float64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	CourtID         int64
	CourtName       string
	SportName       string
	CreatedByUserID *int64
	CustomerName    string
	CustomerContact *string
	CustomerEmail   *string
	Date            time.Time
	Interval        domain.Interval
	TimeSlot        string // Отображаемая форма интервала, "9:00 AM - 10:00 AM"
	SlotsBooked     int
	TotalPrice      float64
	AmountPaid      float64
	BalanceAmount   float64
	PaymentStatus   string
	Status          string
	DiscountAmount  float64
	DiscountReason  *string
	Accessories     []AccessoryLine

	CreatedAt time.Time
	UpdatedAt time.Time
}

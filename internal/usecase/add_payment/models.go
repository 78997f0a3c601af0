package add_payment

import "time"

// Request модель запроса на внесение платежа
type Request struct {
	BookingID       int64
	Amount          float64
	PaymentMode     string  // Cash, Card, UPI и т.п.
	PaymentID       *string // внешний идентификатор транзакции
	CreatedByUserID *int64
}

// Response модель ответа с обновленным платежным состоянием бронирования
type Response struct {
	BookingID     int64
	PaymentRecord PaymentRecord
	TotalPrice    float64
	AmountPaid    float64
	BalanceAmount float64
	PaymentStatus string
}

// PaymentRecord созданная запись леджера
type PaymentRecord struct {
	ID          int64
	Amount      float64
	PaymentMode string
	PaymentID   *string
	PaymentDate time.Time
}

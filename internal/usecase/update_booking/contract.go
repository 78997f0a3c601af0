package update_booking

import (
	"context"
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListForCourtDate(ctx context.Context, courtID int64, date time.Time, excludeID *int64) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// AccessoryRepository интерфейс репозитория аксессуаров
type AccessoryRepository interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Accessory, error)
	ReplaceBookingLines(ctx context.Context, bookingID int64, lines []domain.AccessoryLine) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	SumByBookingID(ctx context.Context, bookingID int64) (float64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс шины уведомлений об изменениях
type EventPublisher interface {
	Publish(kind events.Kind)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

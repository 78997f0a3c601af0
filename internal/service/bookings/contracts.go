package bookings

import (
	"context"
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDWithDetails(ctx context.Context, id int64) (*domain.Booking, error)
	ListForDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	ListByBookingID(ctx context.Context, bookingID int64) ([]*domain.Payment, error)
}

// AccessoryRepository интерфейс репозитория аксессуаров
type AccessoryRepository interface {
	ListBookingLines(ctx context.Context, bookingID int64) ([]domain.AccessoryLine, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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

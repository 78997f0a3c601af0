package get_booking

import (
	"context"

	"github.com/arcsportszone/ARC-BookingService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	GetByID(ctx context.Context, id int64) (*models.BookingDetailsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package update_booking

import (
	"context"

	updateBooking "github.com/arcsportszone/ARC-BookingService/internal/usecase/update_booking"
)

// UpdateBookingUseCase интерфейс use case изменения бронирования
type UpdateBookingUseCase interface {
	Execute(ctx context.Context, req *updateBooking.Request) (*updateBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

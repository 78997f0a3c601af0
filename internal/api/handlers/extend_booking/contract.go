package extend_booking

import (
	"context"

	extendBooking "github.com/arcsportszone/ARC-BookingService/internal/usecase/extend_booking"
)

// ExtendBookingUseCase интерфейс use case продления бронирования
type ExtendBookingUseCase interface {
	Execute(ctx context.Context, req *extendBooking.Request) (*extendBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package cancel_booking

import "context"

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	Cancel(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_courts

import (
	"context"

	"github.com/arcsportszone/ARC-BookingService/internal/service/courts"
)

// CourtsService интерфейс сервиса кортов
type CourtsService interface {
	List(ctx context.Context) ([]courts.CourtResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

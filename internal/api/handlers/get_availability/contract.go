package get_availability

import (
	"context"

	getAvailability "github.com/arcsportszone/ARC-BookingService/internal/usecase/get_availability"
)

// GetAvailabilityUseCase интерфейс use case среза доступности
type GetAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

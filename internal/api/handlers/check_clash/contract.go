package check_clash

import (
	"context"

	checkClash "github.com/arcsportszone/ARC-BookingService/internal/usecase/check_clash"
)

// CheckClashUseCase интерфейс use case проверки конфликта
type CheckClashUseCase interface {
	Execute(ctx context.Context, req *checkClash.Request) (*checkClash.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

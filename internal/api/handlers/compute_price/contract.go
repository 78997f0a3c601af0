package compute_price

import (
	"context"

	computePrice "github.com/arcsportszone/ARC-BookingService/internal/usecase/compute_price"
)

// ComputePriceUseCase интерфейс use case расчета стоимости
type ComputePriceUseCase interface {
	Execute(ctx context.Context, req *computePrice.Request) (*computePrice.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

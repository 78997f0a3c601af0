package add_payment

import (
	"context"

	addPayment "github.com/arcsportszone/ARC-BookingService/internal/usecase/add_payment"
)

// AddPaymentUseCase интерфейс use case внесения платежа
type AddPaymentUseCase interface {
	Execute(ctx context.Context, req *addPayment.Request) (*addPayment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package compute_price

import (
	"context"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// AccessoryRepository интерфейс репозитория аксессуаров
type AccessoryRepository interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Accessory, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

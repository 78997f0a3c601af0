package courts

import (
	"context"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	List(ctx context.Context) ([]*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CourtStatus) error
}

// EventPublisher интерфейс шины уведомлений об изменениях
type EventPublisher interface {
	Publish(kind events.Kind)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

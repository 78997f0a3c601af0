package update_court_status

import "context"

// CourtsService интерфейс сервиса кортов
type CourtsService interface {
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

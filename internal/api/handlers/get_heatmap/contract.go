package get_heatmap

import (
	"context"

	getHeatmap "github.com/arcsportszone/ARC-BookingService/internal/usecase/get_heatmap"
)

// GetHeatmapUseCase интерфейс use case построения теплокарты
type GetHeatmapUseCase interface {
	Execute(ctx context.Context, req *getHeatmap.Request) (*getHeatmap.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

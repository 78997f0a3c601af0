package get_heatmap

import (
	"errors"
	"net/http"
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	getHeatmap "github.com/arcsportszone/ARC-BookingService/internal/usecase/get_heatmap"
)

const msgInvalidDate = "invalid date, expected YYYY-MM-DD"

// CellResponse одна ячейка сетки теплокарты
type CellResponse struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Label          string `json:"label"`
	State          string `json:"state"`
	AvailableSlots int    `json:"availableSlots"`
	Capacity       int    `json:"capacity"`
}

// CourtRowResponse строка теплокарты одного корта
type CourtRowResponse struct {
	CourtID   int64          `json:"courtId"`
	CourtName string         `json:"courtName"`
	SportName string         `json:"sportName"`
	Status    string         `json:"status"`
	Capacity  int            `json:"capacity"`
	Cells     []CellResponse `json:"cells"`
}

// HeatmapResponse HTTP response model
type HeatmapResponse struct {
	Date   string             `json:"date"`
	Courts []CourtRowResponse `json:"courts"`
}

type Handler struct {
	useCase GetHeatmapUseCase
	logger  Logger
}

func NewHandler(useCase GetHeatmapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/heatmap?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getHeatmap.Request{Date: date})
	if err != nil {
		if errors.Is(err, getHeatmap.ErrInvalidInput) {
			h.logger.Warn("GET /availability/heatmap - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /availability/heatmap - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := &HeatmapResponse{
		Date:   result.Date.Format(domain.DateFormat),
		Courts: make([]CourtRowResponse, 0, len(result.Courts)),
	}
	for _, row := range result.Courts {
		cells := make([]CellResponse, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, CellResponse{
				StartTime:      cell.Interval.Start().String(),
				EndTime:        cell.Interval.End().String(),
				Label:          cell.Label,
				State:          cell.State,
				AvailableSlots: cell.AvailableSlots,
				Capacity:       cell.Capacity,
			})
		}
		response.Courts = append(response.Courts, CourtRowResponse{
			CourtID:   row.CourtID,
			CourtName: row.CourtName,
			SportName: row.SportName,
			Status:    row.Status,
			Capacity:  row.Capacity,
			Cells:     cells,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

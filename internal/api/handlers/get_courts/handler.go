package get_courts

import (
	"net/http"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
)

// CourtResponse HTTP response model
type CourtResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	SportID   int64   `json:"sportId"`
	SportName string  `json:"sportName"`
	Price     float64 `json:"price"`
	Capacity  int     `json:"capacity"`
	Status    string  `json:"status"`
}

type Handler struct {
	service CourtsService
	logger  Logger
}

func NewHandler(service CourtsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtsList, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]CourtResponse, 0, len(courtsList))
	for _, c := range courtsList {
		response = append(response, CourtResponse{
			ID:        c.ID,
			Name:      c.Name,
			SportID:   c.SportID,
			SportName: c.SportName,
			Price:     c.Price,
			Capacity:  c.Capacity,
			Status:    c.Status,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	getAvailability "github.com/arcsportszone/ARC-BookingService/internal/usecase/get_availability"
	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

const (
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
	msgInvalidTime = "invalid time format, expected HH:MM"
)

// CourtAvailabilityResponse доступность одного корта
type CourtAvailabilityResponse struct {
	CourtID        int64   `json:"courtId"`
	CourtName      string  `json:"courtName"`
	SportName      string  `json:"sportName"`
	Status         string  `json:"status"`
	Capacity       int     `json:"capacity"`
	IsAvailable    bool    `json:"isAvailable"`
	AvailableSlots int     `json:"availableSlots"`
	OverrideStatus *string `json:"overrideStatus,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date   string                      `json:"date"`
	Courts []CourtAvailabilityResponse `json:"courts"`
}

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/availability?date=YYYY-MM-DD&startTime=HH:MM&endTime=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	endTime, err := types.NewTimeStringFromString(query.Get("endTime"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		if errors.Is(err, getAvailability.ErrInvalidInput) {
			h.logger.Warn("GET /courts/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /courts/availability - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := &AvailabilityResponse{
		Date:   result.Date.Format(domain.DateFormat),
		Courts: make([]CourtAvailabilityResponse, 0, len(result.Courts)),
	}
	for _, c := range result.Courts {
		response.Courts = append(response.Courts, CourtAvailabilityResponse{
			CourtID:        c.CourtID,
			CourtName:      c.CourtName,
			SportName:      c.SportName,
			Status:         c.Status,
			Capacity:       c.Capacity,
			IsAvailable:    c.IsAvailable,
			AvailableSlots: c.AvailableSlots,
			OverrideStatus: c.OverrideStatus,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

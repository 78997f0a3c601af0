package check_clash

import (
	"errors"
	"net/http"
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	checkClash "github.com/arcsportszone/ARC-BookingService/internal/usecase/check_clash"
	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgCourtNotFound      = "court not found"
)

// CheckClashRequest HTTP request model
type CheckClashRequest struct {
	CourtID          int64  `json:"courtId"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	SlotsRequested   int    `json:"slotsRequested"`
	ExcludeBookingID *int64 `json:"excludeBookingId,omitempty"`
}

// CheckClashResponse HTTP response model
type CheckClashResponse struct {
	IsAvailable    bool    `json:"isAvailable"`
	AvailableSlots int     `json:"availableSlots"`
	Capacity       int     `json:"capacity"`
	OverrideStatus *string `json:"overrideStatus,omitempty"`
	Message        string  `json:"message,omitempty"`
}

type Handler struct {
	useCase CheckClashUseCase
	logger  Logger
}

func NewHandler(useCase CheckClashUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check-clash
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckClashRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-clash - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}
	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}
	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkClash.Request{
		CourtID:          req.CourtID,
		Date:             date,
		StartTime:        startTime,
		EndTime:          endTime,
		SlotsRequested:   req.SlotsRequested,
		ExcludeBookingID: req.ExcludeBookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkClash.ErrCourtNotFound):
			h.logger.Warn("POST /bookings/check-clash - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, checkClash.ErrInvalidInput):
			h.logger.Warn("POST /bookings/check-clash - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/check-clash - Failed: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CheckClashResponse{
		IsAvailable:    result.IsAvailable,
		AvailableSlots: result.AvailableSlots,
		Capacity:       result.Capacity,
		OverrideStatus: result.OverrideStatus,
		Message:        result.Message,
	})
}

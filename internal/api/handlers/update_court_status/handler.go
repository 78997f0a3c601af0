package update_court_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
	"github.com/arcsportszone/ARC-BookingService/internal/service/courts"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCourtID     = "invalid court id"
	msgInvalidStatus      = "invalid court status"
	msgCourtNotFound      = "court not found"
)

// UpdateCourtStatusRequest HTTP request model
type UpdateCourtStatusRequest struct {
	Status string `json:"status"`
}

// UpdateCourtStatusResponse HTTP response model
type UpdateCourtStatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
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

// Handle PUT /api/v1/courts/{courtId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil || courtID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	var req UpdateCourtStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /courts/%d/status - Invalid request body: %v", courtID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), courtID, req.Status); err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("PUT /courts/%d/status - Court not found", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, courts.ErrInvalidStatus):
			h.logger.Warn("PUT /courts/%d/status - Invalid status %q", courtID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PUT /courts/%d/status - Failed to update status: %v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /courts/%d/status - Status updated to %q", courtID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, &UpdateCourtStatusResponse{ID: courtID, Status: req.Status})
}

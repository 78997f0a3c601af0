package create_booking

import (
	"errors"
	"net/http"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
	"github.com/arcsportszone/ARC-BookingService/internal/api/middleware"
	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	createBooking "github.com/arcsportszone/ARC-BookingService/internal/usecase/create_booking"
	"github.com/arcsportszone/ARC-BookingService/pkg/txmanager"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgCourtNotFound      = "court not found"
	msgAccessoryNotFound  = "accessory not found"
	msgCourtUnavailable   = "court is not available for booking"
	msgOverpayment        = "amount paid exceeds total price"
	msgDiscountTooLarge   = "discount exceeds court price"
	msgServiceBusy        = "service is busy, please retry"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(middleware.UserIDFromContext(r.Context()))
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *domain.SlotConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Slot conflict: court_id=%d, %d slots left",
				req.CourtID, conflict.AvailableSlots)
			handlers.RespondConflict(w, conflict.Error())

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrAccessoryNotFound):
			h.logger.Warn("POST /bookings - Accessory not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgAccessoryNotFound)

		case errors.Is(err, createBooking.ErrCourtUnavailable):
			h.logger.Warn("POST /bookings - Court unavailable: court_id=%d", req.CourtID)
			handlers.RespondConflict(w, msgCourtUnavailable)

		case errors.Is(err, createBooking.ErrOverpayment):
			h.logger.Warn("POST /bookings - Overpayment: court_id=%d", req.CourtID)
			handlers.RespondBadRequest(w, msgOverpayment)

		case errors.Is(err, createBooking.ErrDiscountTooLarge):
			h.logger.Warn("POST /bookings - Discount too large: court_id=%d", req.CourtID)
			handlers.RespondBadRequest(w, msgDiscountTooLarge)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, txmanager.ErrSerializationFailure), errors.Is(err, txmanager.ErrLockTimeout):
			h.logger.Warn("POST /bookings - Transient conflict: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondServiceBusy(w, msgServiceBusy)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, court_id=%d", result.ID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	updateBooking "github.com/arcsportszone/ARC-BookingService/internal/usecase/update_booking"
	"github.com/arcsportszone/ARC-BookingService/pkg/txmanager"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidDateTime    = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgBookingNotFound    = "booking not found"
	msgBookingCancelled   = "booking is cancelled"
	msgCourtNotFound      = "court not found"
	msgCourtUnavailable   = "court is not available for booking"
	msgAccessoryNotFound  = "accessory not found"
	msgTotalBelowPaid     = "new total is less than amount already paid"
	msgDiscountTooLarge   = "discount exceeds court price"
	msgServiceBusy        = "service is busy, please retry"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/%d - Failed to parse request: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *domain.SlotConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PUT /bookings/%d - Slot conflict: %d slots left", bookingID, conflict.AvailableSlots)
			handlers.RespondConflict(w, conflict.Error())

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrBookingCancelled):
			h.logger.Warn("PUT /bookings/%d - Booking is cancelled", bookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, updateBooking.ErrCourtNotFound):
			h.logger.Warn("PUT /bookings/%d - Court not found", bookingID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, updateBooking.ErrCourtUnavailable):
			h.logger.Warn("PUT /bookings/%d - Court unavailable", bookingID)
			handlers.RespondConflict(w, msgCourtUnavailable)

		case errors.Is(err, updateBooking.ErrAccessoryNotFound):
			h.logger.Warn("PUT /bookings/%d - Accessory not found", bookingID)
			handlers.RespondNotFound(w, msgAccessoryNotFound)

		case errors.Is(err, updateBooking.ErrTotalBelowPaid):
			h.logger.Warn("PUT /bookings/%d - Total below paid amount", bookingID)
			handlers.RespondBadRequest(w, msgTotalBelowPaid)

		case errors.Is(err, updateBooking.ErrDiscountTooLarge):
			h.logger.Warn("PUT /bookings/%d - Discount too large", bookingID)
			handlers.RespondBadRequest(w, msgDiscountTooLarge)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%d - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, txmanager.ErrSerializationFailure), errors.Is(err, txmanager.ErrLockTimeout):
			h.logger.Warn("PUT /bookings/%d - Transient conflict: %v", bookingID, err)
			handlers.RespondServiceBusy(w, msgServiceBusy)

		default:
			h.logger.Error("PUT /bookings/%d - Failed to update booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%d - Booking updated successfully", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package extend_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	extendBooking "github.com/arcsportszone/ARC-BookingService/internal/usecase/extend_booking"
	"github.com/arcsportszone/ARC-BookingService/pkg/txmanager"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgBookingNotFound    = "booking not found"
	msgBookingCancelled   = "booking is cancelled"
	msgServiceBusy        = "service is busy, please retry"
)

// ExtendBookingRequest HTTP request model
type ExtendBookingRequest struct {
	ExtraMinutes int `json:"extraMinutes"`
}

// ExtendBookingResponse HTTP response model
type ExtendBookingResponse struct {
	ID            int64   `json:"id"`
	CourtID       int64   `json:"courtId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	TimeSlot      string  `json:"timeSlot"`
	SlotsBooked   int     `json:"slotsBooked"`
	TotalPrice    float64 `json:"totalPrice"`
	AmountPaid    float64 `json:"amountPaid"`
	BalanceAmount float64 `json:"balanceAmount"`
	PaymentStatus string  `json:"paymentStatus"`
	UpdatedAt     string  `json:"updatedAt"`
}

type Handler struct {
	useCase ExtendBookingUseCase
	logger  Logger
}

func NewHandler(useCase ExtendBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ExtendBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/extend - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &extendBooking.Request{
		BookingID:    bookingID,
		ExtraMinutes: req.ExtraMinutes,
	})
	if err != nil {
		var conflict *domain.SlotConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings/%d/extend - Slot conflict: %d slots left", bookingID, conflict.AvailableSlots)
			handlers.RespondConflict(w, conflict.Error())

		case errors.Is(err, extendBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%d/extend - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, extendBooking.ErrBookingCancelled):
			h.logger.Warn("POST /bookings/%d/extend - Booking is cancelled", bookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, extendBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/%d/extend - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, txmanager.ErrSerializationFailure), errors.Is(err, txmanager.ErrLockTimeout):
			h.logger.Warn("POST /bookings/%d/extend - Transient conflict: %v", bookingID, err)
			handlers.RespondServiceBusy(w, msgServiceBusy)

		default:
			h.logger.Error("POST /bookings/%d/extend - Failed to extend booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/extend - Booking extended, new total=%.2f", bookingID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, &ExtendBookingResponse{
		ID:            result.ID,
		CourtID:       result.CourtID,
		Date:          result.Date.Format(domain.DateFormat),
		StartTime:     result.Interval.Start().String(),
		EndTime:       result.Interval.End().String(),
		TimeSlot:      result.TimeSlot,
		SlotsBooked:   result.SlotsBooked,
		TotalPrice:    result.TotalPrice,
		AmountPaid:    result.AmountPaid,
		BalanceAmount: result.BalanceAmount,
		PaymentStatus: result.PaymentStatus,
		UpdatedAt:     result.UpdatedAt.Format(time.RFC3339),
	})
}

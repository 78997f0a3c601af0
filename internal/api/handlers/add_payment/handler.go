package add_payment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
	"github.com/arcsportszone/ARC-BookingService/internal/api/middleware"
	addPayment "github.com/arcsportszone/ARC-BookingService/internal/usecase/add_payment"
	"github.com/arcsportszone/ARC-BookingService/pkg/txmanager"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgBookingNotFound    = "booking not found"
	msgBookingCancelled   = "booking is cancelled"
	msgAlreadyPaid        = "booking is already fully paid"
	msgOverpayment        = "payment exceeds outstanding balance"
	msgServiceBusy        = "service is busy, please retry"
)

// AddPaymentRequest HTTP request model
type AddPaymentRequest struct {
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode"`
	PaymentID   *string `json:"paymentId,omitempty"`
}

// PaymentRecordResponse созданная запись леджера
type PaymentRecordResponse struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode"`
	PaymentID   *string `json:"paymentId,omitempty"`
	PaymentDate string  `json:"paymentDate"`
}

// AddPaymentResponse HTTP response model
type AddPaymentResponse struct {
	BookingID     int64                 `json:"bookingId"`
	Payment       PaymentRecordResponse `json:"payment"`
	TotalPrice    float64               `json:"totalPrice"`
	AmountPaid    float64               `json:"amountPaid"`
	BalanceAmount float64               `json:"balanceAmount"`
	PaymentStatus string                `json:"paymentStatus"`
}

type Handler struct {
	useCase AddPaymentUseCase
	logger  Logger
}

func NewHandler(useCase AddPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AddPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/payments - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &addPayment.Request{
		BookingID:       bookingID,
		Amount:          req.Amount,
		PaymentMode:     req.PaymentMode,
		PaymentID:       req.PaymentID,
		CreatedByUserID: middleware.UserIDFromContext(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, addPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%d/payments - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, addPayment.ErrBookingCancelled):
			h.logger.Warn("POST /bookings/%d/payments - Booking is cancelled", bookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, addPayment.ErrAlreadyPaid):
			h.logger.Warn("POST /bookings/%d/payments - Already fully paid", bookingID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, addPayment.ErrOverpayment):
			h.logger.Warn("POST /bookings/%d/payments - Overpayment attempt", bookingID)
			handlers.RespondBadRequest(w, msgOverpayment)

		case errors.Is(err, addPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/%d/payments - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, txmanager.ErrSerializationFailure), errors.Is(err, txmanager.ErrLockTimeout):
			h.logger.Warn("POST /bookings/%d/payments - Transient conflict: %v", bookingID, err)
			handlers.RespondServiceBusy(w, msgServiceBusy)

		default:
			h.logger.Error("POST /bookings/%d/payments - Failed to add payment: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/payments - Payment recorded, balance=%.2f", bookingID, result.BalanceAmount)
	handlers.RespondJSON(w, http.StatusCreated, &AddPaymentResponse{
		BookingID: result.BookingID,
		Payment: PaymentRecordResponse{
			ID:          result.PaymentRecord.ID,
			Amount:      result.PaymentRecord.Amount,
			PaymentMode: result.PaymentRecord.PaymentMode,
			PaymentID:   result.PaymentRecord.PaymentID,
			PaymentDate: result.PaymentRecord.PaymentDate.Format(time.RFC3339),
		},
		TotalPrice:    result.TotalPrice,
		AmountPaid:    result.AmountPaid,
		BalanceAmount: result.BalanceAmount,
		PaymentStatus: result.PaymentStatus,
	})
}

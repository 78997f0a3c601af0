package get_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/service/bookings"
	"github.com/arcsportszone/ARC-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgBookingNotFound  = "booking not found"
)

// PaymentEntryResponse запись леджера платежей
type PaymentEntryResponse struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode"`
	PaymentID   *string `json:"paymentId,omitempty"`
	CreatedBy   *string `json:"createdBy,omitempty"`
	PaymentDate string  `json:"paymentDate"`
}

// AccessoryEntryResponse строка аксессуара
type AccessoryEntryResponse struct {
	AccessoryID   int64   `json:"accessoryId"`
	AccessoryName string  `json:"accessoryName"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	LineTotal     float64 `json:"lineTotal"`
}

// BookingDetailsResponse HTTP response model
type BookingDetailsResponse struct {
	ID              int64                    `json:"id"`
	CourtID         int64                    `json:"courtId"`
	CourtName       string                   `json:"courtName"`
	SportName       string                   `json:"sportName"`
	CustomerName    string                   `json:"customerName"`
	CustomerContact *string                  `json:"customerContact,omitempty"`
	CustomerEmail   *string                  `json:"customerEmail,omitempty"`
	CreatedBy       *string                  `json:"createdBy,omitempty"`
	Date            string                   `json:"date"`
	StartTime       string                   `json:"startTime"`
	EndTime         string                   `json:"endTime"`
	TimeSlot        string                   `json:"timeSlot"`
	SlotsBooked     int                      `json:"slotsBooked"`
	TotalPrice      float64                  `json:"totalPrice"`
	AmountPaid      float64                  `json:"amountPaid"`
	BalanceAmount   float64                  `json:"balanceAmount"`
	PaymentStatus   string                   `json:"paymentStatus"`
	Status          string                   `json:"status"`
	DiscountAmount  float64                  `json:"discountAmount"`
	DiscountReason  *string                  `json:"discountReason,omitempty"`
	IsRescheduled   bool                     `json:"isRescheduled"`
	Payments        []PaymentEntryResponse   `json:"payments"`
	Accessories     []AccessoryEntryResponse `json:"accessories"`
	CreatedAt       string                   `json:"createdAt"`
	UpdatedAt       string                   `json:"updatedAt"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("GET /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /bookings/%d - Failed to get booking: %v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.BookingDetailsResponse) *BookingDetailsResponse {
	payments := make([]PaymentEntryResponse, 0, len(resp.Payments))
	for _, p := range resp.Payments {
		payments = append(payments, PaymentEntryResponse{
			ID:          p.ID,
			Amount:      p.Amount,
			PaymentMode: p.PaymentMode,
			PaymentID:   p.PaymentID,
			CreatedBy:   p.CreatedBy,
			PaymentDate: p.PaymentDate.Format(time.RFC3339),
		})
	}

	accessories := make([]AccessoryEntryResponse, 0, len(resp.Accessories))
	for _, a := range resp.Accessories {
		accessories = append(accessories, AccessoryEntryResponse{
			AccessoryID:   a.AccessoryID,
			AccessoryName: a.AccessoryName,
			Quantity:      a.Quantity,
			Price:         a.Price,
			LineTotal:     a.LineTotal,
		})
	}

	return &BookingDetailsResponse{
		ID:              resp.ID,
		CourtID:         resp.CourtID,
		CourtName:       resp.CourtName,
		SportName:       resp.SportName,
		CustomerName:    resp.CustomerName,
		CustomerContact: resp.CustomerContact,
		CustomerEmail:   resp.CustomerEmail,
		CreatedBy:       resp.CreatedByUser,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.Interval.Start().String(),
		EndTime:         resp.Interval.End().String(),
		TimeSlot:        resp.TimeSlot,
		SlotsBooked:     resp.SlotsBooked,
		TotalPrice:      resp.TotalPrice,
		AmountPaid:      resp.AmountPaid,
		BalanceAmount:   resp.BalanceAmount,
		PaymentStatus:   resp.PaymentStatus,
		Status:          resp.Status,
		DiscountAmount:  resp.DiscountAmount,
		DiscountReason:  resp.DiscountReason,
		IsRescheduled:   resp.IsRescheduled,
		Payments:        payments,
		Accessories:     accessories,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

package get_day_bookings

import (
	"net/http"
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
	"github.com/arcsportszone/ARC-BookingService/internal/domain"
)

const msgInvalidDate = "invalid date, expected YYYY-MM-DD"

// BookingResponse бронирование в дневном списке
type BookingResponse struct {
	ID             int64   `json:"id"`
	CourtID        int64   `json:"courtId"`
	CourtName      string  `json:"courtName"`
	SportName      string  `json:"sportName"`
	CustomerName   string  `json:"customerName"`
	CreatedBy      *string `json:"createdBy,omitempty"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	TimeSlot       string  `json:"timeSlot"`
	SlotsBooked    int     `json:"slotsBooked"`
	TotalPrice     float64 `json:"totalPrice"`
	AmountPaid     float64 `json:"amountPaid"`
	BalanceAmount  float64 `json:"balanceAmount"`
	PaymentStatus  string  `json:"paymentStatus"`
	Status         string  `json:"status"`
	DiscountAmount float64 `json:"discountAmount"`
	IsRescheduled  bool    `json:"isRescheduled"`
}

// DayBookingsResponse HTTP response model
type DayBookingsResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
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

// Handle GET /api/v1/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListForDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings for %s: %v", date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	response := &DayBookingsResponse{
		Date:     result.Date.Format(domain.DateFormat),
		Bookings: make([]BookingResponse, 0, len(result.Bookings)),
	}
	for _, b := range result.Bookings {
		response.Bookings = append(response.Bookings, BookingResponse{
			ID:             b.ID,
			CourtID:        b.CourtID,
			CourtName:      b.CourtName,
			SportName:      b.SportName,
			CustomerName:   b.CustomerName,
			CreatedBy:      b.CreatedByUser,
			Date:           b.Date.Format(domain.DateFormat),
			StartTime:      b.Interval.Start().String(),
			EndTime:        b.Interval.End().String(),
			TimeSlot:       b.TimeSlot,
			SlotsBooked:    b.SlotsBooked,
			TotalPrice:     b.TotalPrice,
			AmountPaid:     b.AmountPaid,
			BalanceAmount:  b.BalanceAmount,
			PaymentStatus:  b.PaymentStatus,
			Status:         b.Status,
			DiscountAmount: b.DiscountAmount,
			IsRescheduled:  b.IsRescheduled,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

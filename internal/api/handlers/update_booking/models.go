package update_booking

import (
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	updateBooking "github.com/arcsportszone/ARC-BookingService/internal/usecase/update_booking"
	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

// AccessoryItem запрошенный аксессуар
type AccessoryItem struct {
	AccessoryID int64 `json:"accessoryId"`
	Quantity    int   `json:"quantity"`
}

// PaymentItem платеж, вносимый вместе с изменением
type PaymentItem struct {
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode"`
	PaymentID   *string `json:"paymentId,omitempty"`
}

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	CustomerName    string          `json:"customerName"`
	CustomerContact *string         `json:"customerContact,omitempty"`
	CustomerEmail   *string         `json:"customerEmail,omitempty"`
	Date            string          `json:"date"`
	StartTime       string          `json:"startTime"`
	EndTime         string          `json:"endTime"`
	SlotsBooked     int             `json:"slotsBooked"`
	DiscountAmount  float64         `json:"discountAmount"`
	DiscountReason  *string         `json:"discountReason,omitempty"`
	Accessories     []AccessoryItem `json:"accessories,omitempty"`
	StagedPayments  []PaymentItem   `json:"stagedPayments,omitempty"`
}

// AccessoryLineResponse строка аксессуара в ответе
type AccessoryLineResponse struct {
	AccessoryID   int64   `json:"accessoryId"`
	AccessoryName string  `json:"accessoryName"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64                   `json:"id"`
	CourtID         int64                   `json:"courtId"`
	CustomerName    string                  `json:"customerName"`
	CustomerContact *string                 `json:"customerContact,omitempty"`
	CustomerEmail   *string                 `json:"customerEmail,omitempty"`
	Date            string                  `json:"date"`
	StartTime       string                  `json:"startTime"`
	EndTime         string                  `json:"endTime"`
	TimeSlot        string                  `json:"timeSlot"`
	SlotsBooked     int                     `json:"slotsBooked"`
	TotalPrice      float64                 `json:"totalPrice"`
	AmountPaid      float64                 `json:"amountPaid"`
	BalanceAmount   float64                 `json:"balanceAmount"`
	PaymentStatus   string                  `json:"paymentStatus"`
	Status          string                  `json:"status"`
	DiscountAmount  float64                 `json:"discountAmount"`
	DiscountReason  *string                 `json:"discountReason,omitempty"`
	IsRescheduled   bool                    `json:"isRescheduled"`
	Accessories     []AccessoryLineResponse `json:"accessories"`
	UpdatedAt       string                  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	slots := r.SlotsBooked
	if slots == 0 {
		slots = 1
	}

	accessories := make([]updateBooking.AccessoryItem, 0, len(r.Accessories))
	for _, item := range r.Accessories {
		accessories = append(accessories, updateBooking.AccessoryItem{
			AccessoryID: item.AccessoryID,
			Quantity:    item.Quantity,
		})
	}

	payments := make([]updateBooking.PaymentItem, 0, len(r.StagedPayments))
	for _, item := range r.StagedPayments {
		payments = append(payments, updateBooking.PaymentItem{
			Amount:      item.Amount,
			PaymentMode: item.PaymentMode,
			PaymentID:   item.PaymentID,
		})
	}

	return &updateBooking.Request{
		BookingID:       bookingID,
		CustomerName:    r.CustomerName,
		CustomerContact: r.CustomerContact,
		CustomerEmail:   r.CustomerEmail,
		Date:            date,
		StartTime:       startTime,
		EndTime:         endTime,
		SlotsBooked:     slots,
		DiscountAmount:  r.DiscountAmount,
		DiscountReason:  r.DiscountReason,
		Accessories:     accessories,
		StagedPayments:  payments,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	accessories := make([]AccessoryLineResponse, 0, len(resp.Accessories))
	for _, line := range resp.Accessories {
		accessories = append(accessories, AccessoryLineResponse{
			AccessoryID:   line.AccessoryID,
			AccessoryName: line.AccessoryName,
			Quantity:      line.Quantity,
			Price:         line.Price,
		})
	}

	return &BookingResponse{
		ID:              resp.ID,
		CourtID:         resp.CourtID,
		CustomerName:    resp.CustomerName,
		CustomerContact: resp.CustomerContact,
		CustomerEmail:   resp.CustomerEmail,
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
		Accessories:     accessories,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

package compute_price

import (
	"errors"
	"net/http"

	"github.com/arcsportszone/ARC-BookingService/internal/api/handlers"
	computePrice "github.com/arcsportszone/ARC-BookingService/internal/usecase/compute_price"
	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid time format, expected HH:MM"
	msgCourtNotFound      = "court not found"
	msgAccessoryNotFound  = "accessory not found"
	msgDiscountTooLarge   = "discount exceeds court price"
)

// AccessoryItem запрошенный аксессуар
type AccessoryItem struct {
	AccessoryID int64 `json:"accessoryId"`
	Quantity    int   `json:"quantity"`
}

// ComputePriceRequest HTTP request model
type ComputePriceRequest struct {
	CourtID        int64           `json:"courtId"`
	StartTime      string          `json:"startTime"`
	EndTime        string          `json:"endTime"`
	SlotsBooked    int             `json:"slotsBooked"`
	DiscountAmount float64         `json:"discountAmount"`
	Accessories    []AccessoryItem `json:"accessories,omitempty"`
}

// AccessoryLineResponse строка аксессуара в разбивке цены
type AccessoryLineResponse struct {
	AccessoryID   int64   `json:"accessoryId"`
	AccessoryName string  `json:"accessoryName"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	LineTotal     float64 `json:"lineTotal"`
}

// ComputePriceResponse HTTP response model с разбивкой стоимости
type ComputePriceResponse struct {
	CourtID          int64                   `json:"courtId"`
	DurationMinutes  int                     `json:"durationMinutes"`
	HourlyRate       float64                 `json:"hourlyRate"`
	CourtPrice       float64                 `json:"courtPrice"`
	SlotsBooked      int                     `json:"slotsBooked"`
	CourtTotal       float64                 `json:"courtTotal"`
	DiscountAmount   float64                 `json:"discountAmount"`
	AccessoriesTotal float64                 `json:"accessoriesTotal"`
	Accessories      []AccessoryLineResponse `json:"accessories"`
	TotalPrice       float64                 `json:"totalPrice"`
}

type Handler struct {
	useCase ComputePriceUseCase
	logger  Logger
}

func NewHandler(useCase ComputePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/calculate-price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ComputePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/calculate-price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	accessories := make([]computePrice.AccessoryItem, 0, len(req.Accessories))
	for _, item := range req.Accessories {
		accessories = append(accessories, computePrice.AccessoryItem{
			AccessoryID: item.AccessoryID,
			Quantity:    item.Quantity,
		})
	}

	result, err := h.useCase.Execute(r.Context(), &computePrice.Request{
		CourtID:        req.CourtID,
		StartTime:      startTime,
		EndTime:        endTime,
		SlotsBooked:    req.SlotsBooked,
		DiscountAmount: req.DiscountAmount,
		Accessories:    accessories,
	})
	if err != nil {
		switch {
		case errors.Is(err, computePrice.ErrCourtNotFound):
			h.logger.Warn("POST /bookings/calculate-price - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, computePrice.ErrAccessoryNotFound):
			h.logger.Warn("POST /bookings/calculate-price - Accessory not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgAccessoryNotFound)

		case errors.Is(err, computePrice.ErrDiscountTooLarge):
			h.logger.Warn("POST /bookings/calculate-price - Discount too large: court_id=%d", req.CourtID)
			handlers.RespondBadRequest(w, msgDiscountTooLarge)

		case errors.Is(err, computePrice.ErrInvalidInput):
			h.logger.Warn("POST /bookings/calculate-price - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/calculate-price - Failed: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	lines := make([]AccessoryLineResponse, 0, len(result.Accessories))
	for _, line := range result.Accessories {
		lines = append(lines, AccessoryLineResponse{
			AccessoryID:   line.AccessoryID,
			AccessoryName: line.AccessoryName,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			LineTotal:     line.LineTotal,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, &ComputePriceResponse{
		CourtID:          result.CourtID,
		DurationMinutes:  result.DurationMinutes,
		HourlyRate:       result.HourlyRate,
		CourtPrice:       result.CourtPrice,
		SlotsBooked:      result.SlotsBooked,
		CourtTotal:       result.CourtTotal,
		DiscountAmount:   result.DiscountAmount,
		AccessoriesTotal: result.AccessoriesTotal,
		Accessories:      lines,
		TotalPrice:       result.TotalPrice,
	})
}

package update_booking

import (
	"fmt"
	"strings"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if req.SlotsBooked <= 0 {
		return fmt.Errorf("%w: slotsBooked must be positive", ErrInvalidInput)
	}
	if req.SlotsBooked > domain.MaxSlotsPerBooking {
		return fmt.Errorf("%w: slotsBooked exceeds limit", ErrInvalidInput)
	}

	if req.DiscountAmount < 0 {
		return fmt.Errorf("%w: discountAmount must not be negative", ErrInvalidInput)
	}
	if req.DiscountAmount > 0 && (req.DiscountReason == nil || strings.TrimSpace(*req.DiscountReason) == "") {
		return fmt.Errorf("%w: discountReason is required when discountAmount is set", ErrInvalidInput)
	}
	if req.DiscountReason != nil && len(*req.DiscountReason) > domain.MaxDiscountReasonLength {
		return fmt.Errorf("%w: discountReason is too long", ErrInvalidInput)
	}

	for _, item := range req.StagedPayments {
		if item.Amount <= 0 {
			return fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
		}
		if strings.TrimSpace(item.PaymentMode) == "" {
			return fmt.Errorf("%w: paymentMode is required", ErrInvalidInput)
		}
	}

	for _, item := range req.Accessories {
		if item.AccessoryID <= 0 {
			return fmt.Errorf("%w: accessory id must be positive", ErrInvalidInput)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: accessory quantity must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// resolveAccessoryLines проверяет существование всех запрошенных аксессуаров
// и фиксирует их текущие цены как цены бронирования
func resolveAccessoryLines(items []AccessoryItem, catalog map[int64]*domain.Accessory) ([]domain.AccessoryLine, error) {
	lines := make([]domain.AccessoryLine, 0, len(items))
	for _, item := range items {
		accessory, ok := catalog[item.AccessoryID]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrAccessoryNotFound, item.AccessoryID)
		}
		lines = append(lines, domain.AccessoryLine{
			AccessoryID:    accessory.ID,
			AccessoryName:  accessory.Name,
			Quantity:       item.Quantity,
			PriceAtBooking: accessory.Price,
		})
	}
	return lines, nil
}

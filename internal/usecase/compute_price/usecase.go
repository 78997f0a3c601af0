package compute_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	courtRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/court"
	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

// AccessoryItem запрошенный аксессуар
type AccessoryItem struct {
	AccessoryID int64
	Quantity    int
}

// Request модель запроса расчета стоимости
type Request struct {
	CourtID        int64
	StartTime      types.TimeString
	EndTime        types.TimeString
	SlotsBooked    int
	DiscountAmount float64
	Accessories    []AccessoryItem
}

// AccessoryLine строка аксессуара в разбивке цены
type AccessoryLine struct {
	AccessoryID   int64
	AccessoryName string
	Quantity      int
	UnitPrice     float64
	LineTotal     float64
}

// Response разбивка стоимости: корт, множитель слотов, скидка, аксессуары
type Response struct {
	CourtID          int64
	DurationMinutes  int
	HourlyRate       float64
	CourtPrice       float64 // стоимость корта за один слот
	SlotsBooked      int
	CourtTotal       float64 // стоимость корта с множителем слотов
	DiscountAmount   float64
	AccessoriesTotal float64
	Accessories      []AccessoryLine
	TotalPrice       float64
}

// UseCase use case серверного расчета стоимости.
// Тот же самый расчет выполняется при создании бронирования: клиентские
// цены никогда не принимаются на веру
type UseCase struct {
	courtRepo     CourtRepository
	accessoryRepo AccessoryRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(courtRepo CourtRepository, accessoryRepo AccessoryRepository, logger Logger) *UseCase {
	return &UseCase{
		courtRepo:     courtRepo,
		accessoryRepo: accessoryRepo,
		logger:        logger,
	}
}

// Execute выполняет расчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}
	if req.SlotsBooked <= 0 {
		req.SlotsBooked = 1
	}
	if req.DiscountAmount < 0 {
		return nil, fmt.Errorf("%w: discountAmount must not be negative", ErrInvalidInput)
	}

	interval, err := domain.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	ids := make([]int64, 0, len(req.Accessories))
	for _, item := range req.Accessories {
		if item.AccessoryID <= 0 || item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: accessory id and quantity must be positive", ErrInvalidInput)
		}
		ids = append(ids, item.AccessoryID)
	}

	catalog, err := uc.accessoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get accessories: %v", ErrInternal, err)
	}

	lines := make([]AccessoryLine, 0, len(req.Accessories))
	accessoriesTotal := 0.0
	for _, item := range req.Accessories {
		accessory, ok := catalog[item.AccessoryID]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrAccessoryNotFound, item.AccessoryID)
		}
		lineTotal := float64(item.Quantity) * accessory.Price
		accessoriesTotal += lineTotal
		lines = append(lines, AccessoryLine{
			AccessoryID:   accessory.ID,
			AccessoryName: accessory.Name,
			Quantity:      item.Quantity,
			UnitPrice:     accessory.Price,
			LineTotal:     lineTotal,
		})
	}

	policy := domain.PolicyFor(court.Capacity)
	courtPrice := policy.CourtPrice(court.Price, interval.DurationMinutes())
	courtTotal := courtPrice
	if req.SlotsBooked > 1 {
		courtTotal *= float64(req.SlotsBooked)
	}
	if req.DiscountAmount > courtTotal {
		return nil, fmt.Errorf("%w: discount=%.2f, court price=%.2f", ErrDiscountTooLarge, req.DiscountAmount, courtTotal)
	}

	total := domain.ComputeBookingPrice(policy, court.Price, interval.DurationMinutes(),
		req.SlotsBooked, accessoriesTotal, req.DiscountAmount)

	return &Response{
		CourtID:          court.ID,
		DurationMinutes:  interval.DurationMinutes(),
		HourlyRate:       court.Price,
		CourtPrice:       courtPrice,
		SlotsBooked:      req.SlotsBooked,
		CourtTotal:       courtTotal,
		DiscountAmount:   req.DiscountAmount,
		AccessoriesTotal: accessoriesTotal,
		Accessories:      lines,
		TotalPrice:       total,
	}, nil
}

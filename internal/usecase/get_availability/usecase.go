package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

// Request модель запроса доступности кортов на интервал
type Request struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// CourtAvailability доступность одного корта на запрошенный интервал
type CourtAvailability struct {
	CourtID        int64
	CourtName      string
	SportName      string
	Status         string
	Capacity       int
	IsAvailable    bool
	AvailableSlots int
	OverrideStatus *string
}

// Response модель ответа со срезом доступности всех кортов
type Response struct {
	Date   time.Time
	Courts []CourtAvailability
}

// UseCase use case среза доступности всех кортов на один интервал
type UseCase struct {
	courtRepo   CourtRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(courtRepo CourtRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		courtRepo:   courtRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет расчет доступности.
// Бронирования всех кортов на дату выбираются одним запросом и
// группируются в памяти
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	interval, err := domain.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	courts, err := uc.courtRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListForDate(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	byCourt := make(map[int64][]*domain.Booking)
	for _, b := range bookings {
		byCourt[b.CourtID] = append(byCourt[b.CourtID], b)
	}

	result := make([]CourtAvailability, 0, len(courts))
	for _, court := range courts {
		policy := domain.PolicyFor(court.Capacity)
		availability := domain.ResolveAvailability(court.Status, policy, byCourt[court.ID], interval, 1)

		entry := CourtAvailability{
			CourtID:        court.ID,
			CourtName:      court.Name,
			SportName:      court.SportName,
			Status:         string(court.Status),
			Capacity:       policy.Capacity(),
			IsAvailable:    availability.IsAvailable,
			AvailableSlots: availability.AvailableSlots,
		}
		if availability.Override != nil {
			status := string(*availability.Override)
			entry.OverrideStatus = &status
		}
		result = append(result, entry)
	}

	return &Response{Date: req.Date, Courts: result}, nil
}

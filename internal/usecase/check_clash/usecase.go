package check_clash

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	courtRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/court"
	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

// Request модель запроса проверки конфликта
type Request struct {
	CourtID          int64
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	SlotsRequested   int
	ExcludeBookingID *int64 // при переносе/продлении собственный интервал не считается конфликтом
}

// Response модель ответа проверки конфликта.
// Message заполняется только при конфликте и несет пользовательскую
// формулировку причины
type Response struct {
	IsAvailable    bool
	AvailableSlots int
	Capacity       int
	OverrideStatus *string
	Message        string
}

// UseCase use case предварительной проверки доступности слота.
// Ответ советующий: авторитетная проверка повторяется внутри
// транзакции создания/изменения бронирования
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

// Execute выполняет проверку конфликта без блокировок
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.CourtID <= 0 {
		return nil, fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.SlotsRequested <= 0 {
		req.SlotsRequested = 1
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

	bookings, err := uc.bookingRepo.ListForCourtDate(ctx, req.CourtID, req.Date, req.ExcludeBookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	policy := domain.PolicyFor(court.Capacity)
	availability := domain.ResolveAvailability(court.Status, policy, bookings, interval, req.SlotsRequested)

	resp := &Response{
		IsAvailable:    availability.IsAvailable,
		AvailableSlots: availability.AvailableSlots,
		Capacity:       policy.Capacity(),
	}

	if availability.Override != nil {
		status := string(*availability.Override)
		resp.OverrideStatus = &status
		resp.Message = fmt.Sprintf("Court is not available: %s.", status)
		return resp, nil
	}

	if !availability.IsAvailable {
		conflict := &domain.SlotConflictError{
			AvailableSlots: availability.AvailableSlots,
			Capacity:       policy.Capacity(),
		}
		resp.Message = conflict.Error()
	}

	return resp, nil
}

package extend_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
	bookingRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/court"
)

// UseCase use case для продления бронирования
type UseCase struct {
	courtRepo     CourtRepository
	bookingRepo   BookingRepository
	accessoryRepo AccessoryRepository
	paymentRepo   PaymentRepository
	txManager     TransactionManager
	bus           EventPublisher
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	bookingRepo BookingRepository,
	accessoryRepo AccessoryRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	bus EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:     courtRepo,
		bookingRepo:   bookingRepo,
		accessoryRepo: accessoryRepo,
		paymentRepo:   paymentRepo,
		txManager:     txManager,
		bus:           bus,
		logger:        logger,
	}
}

// Execute выполняет use case продления бронирования.
// Конец интервала сдвигается на ExtraMinutes, конфликт проверяется по
// всему новому интервалу без учета самого бронирования, цена
// пересчитывается целиком по новой длительности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExtendBooking: id=%d, extraMinutes=%d", req.BookingID, req.ExtraMinutes)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}
	if req.ExtraMinutes <= 0 {
		return nil, fmt.Errorf("%w: extraMinutes must be positive", ErrInvalidInput)
	}
	if req.ExtraMinutes > domain.MaxExtendDurationMinutes {
		return nil, fmt.Errorf("%w: extraMinutes exceeds limit", ErrInvalidInput)
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		if booking.IsCancelled() {
			return ErrBookingCancelled
		}

		// 2. Новый интервал не должен выходить за сутки
		extended, err := booking.Interval.Extended(req.ExtraMinutes)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		court, err := uc.courtRepo.GetByID(txCtx, booking.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				return ErrCourtNotFound
			}
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		// 3. Проверяем конфликт по всему продленному интервалу, исключая
		// само бронирование
		others, err := uc.bookingRepo.ListForCourtDate(txCtx, booking.CourtID, booking.Date, &booking.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		policy := domain.PolicyFor(court.Capacity)
		availability := domain.ResolveAvailability(court.Status, policy, others, extended, booking.SlotsBooked)
		if !availability.IsAvailable {
			uc.logger.Warn("ExtendBooking: conflict on court id=%d, %d slots left",
				court.ID, availability.AvailableSlots)
			return &domain.SlotConflictError{
				AvailableSlots: availability.AvailableSlots,
				Capacity:       policy.Capacity(),
			}
		}

		// 4. Пересчитываем цену по полной новой длительности; скидка и
		// аксессуары сохраняются
		lines, err := uc.accessoryRepo.ListBookingLines(txCtx, booking.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to list accessories: %v", ErrInternal, err)
		}

		total := domain.ComputeBookingPrice(policy, court.Price, extended.DurationMinutes(),
			booking.SlotsBooked, domain.AccessoriesTotal(lines), booking.DiscountAmount)

		amountPaid, err := uc.paymentRepo.SumByBookingID(txCtx, booking.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to sum payments: %v", ErrInternal, err)
		}

		status := domain.DerivePaymentStatus(total, amountPaid)
		if err := uc.bookingRepo.UpdateInterval(txCtx, booking.ID, extended, total, amountPaid, status); err != nil {
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		booking.Interval = extended
		booking.TotalPrice = total
		booking.AmountPaid = amountPaid
		booking.BalanceAmount = total - amountPaid
		booking.PaymentStatus = status

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.bus.Publish(events.BookingsUpdated)

	uc.logger.Info("ExtendBooking: successfully extended booking id=%d, new total=%.2f", result.ID, result.TotalPrice)

	return &Response{
		ID:            result.ID,
		CourtID:       result.CourtID,
		Date:          result.Date,
		Interval:      result.Interval,
		TimeSlot:      result.TimeSlotLabel(),
		SlotsBooked:   result.SlotsBooked,
		TotalPrice:    result.TotalPrice,
		AmountPaid:    result.AmountPaid,
		BalanceAmount: result.BalanceAmount,
		PaymentStatus: string(result.PaymentStatus),
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

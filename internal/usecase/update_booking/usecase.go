package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
	bookingRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/court"
	"github.com/arcsportszone/ARC-BookingService/pkg/ptr"
)

// UseCase use case для изменения бронирования
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

// Execute выполняет use case изменения бронирования.
// Проверка конфликтов исключает само изменяемое бронирование, поэтому
// сдвиг в пределах собственного интервала всегда проходит
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, date=%s, time=%s-%s, slots=%d",
		req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.SlotsBooked)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	interval, err := domain.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("UpdateBooking: invalid interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		result *domain.Booking
		lines  []domain.AccessoryLine
	)

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой строки
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

		// 2.2. Корт бронирования не меняется; перенос на другой корт - это
		// отмена плюс новое бронирование
		court, err := uc.courtRepo.GetByID(txCtx, booking.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				return ErrCourtNotFound
			}
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		rescheduled := !booking.Date.Equal(req.Date) || booking.Interval != interval

		// 2.3. Проверяем конфликты на новом интервале, если он изменился
		// или выросло число слотов; статус-оверрайд блокирует перенос
		if rescheduled || req.SlotsBooked != booking.SlotsBooked {
			if court.Status.IsOverride() {
				return fmt.Errorf("%w: %s", ErrCourtUnavailable, court.Status)
			}

			others, err := uc.bookingRepo.ListForCourtDate(txCtx, booking.CourtID, req.Date, &booking.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
			}

			policy := domain.PolicyFor(court.Capacity)
			availability := domain.ResolveAvailability(court.Status, policy, others, interval, req.SlotsBooked)
			if !availability.IsAvailable {
				uc.logger.Warn("UpdateBooking: conflict on court id=%d, %d slots left",
					court.ID, availability.AvailableSlots)
				return &domain.SlotConflictError{
					AvailableSlots: availability.AvailableSlots,
					Capacity:       policy.Capacity(),
				}
			}
		}

		// 2.4. Пересоздаем набор аксессуаров с текущими ценами каталога
		catalog, err := uc.accessoryRepo.GetByIDs(txCtx, accessoryIDs(req.Accessories))
		if err != nil {
			return fmt.Errorf("%w: failed to get accessories: %v", ErrInternal, err)
		}
		lines, err = resolveAccessoryLines(req.Accessories, catalog)
		if err != nil {
			return err
		}

		// 2.5. Пересчитываем авторитетную цену
		policy := domain.PolicyFor(court.Capacity)
		courtPrice := policy.CourtPrice(court.Price, interval.DurationMinutes())
		if req.SlotsBooked > 1 {
			courtPrice *= float64(req.SlotsBooked)
		}
		if req.DiscountAmount > courtPrice {
			return fmt.Errorf("%w: discount=%.2f, court price=%.2f", ErrDiscountTooLarge, req.DiscountAmount, courtPrice)
		}

		total := domain.ComputeBookingPrice(policy, court.Price, interval.DurationMinutes(),
			req.SlotsBooked, domain.AccessoriesTotal(lines), req.DiscountAmount)

		// 2.6. Платежи, присланные вместе с изменением, дописываются в
		// леджер в этой же транзакции
		for _, item := range req.StagedPayments {
			paymentID := item.PaymentID
			if paymentID == nil {
				paymentID = ptr.Ptr(uuid.NewString())
			}
			if _, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
				BookingID:   booking.ID,
				Amount:      item.Amount,
				PaymentMode: item.PaymentMode,
				PaymentID:   paymentID,
			}); err != nil {
				return fmt.Errorf("%w: failed to record payment: %v", ErrInternal, err)
			}
		}

		// 2.7. amount_paid всегда пересчитывается суммой леджера; итог не
		// может опуститься ниже уже внесенной суммы
		amountPaid, err := uc.paymentRepo.SumByBookingID(txCtx, booking.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to sum payments: %v", ErrInternal, err)
		}
		if amountPaid > total {
			return fmt.Errorf("%w: paid=%.2f, new total=%.2f", ErrTotalBelowPaid, amountPaid, total)
		}

		// 2.8. Применяем изменения
		booking.CustomerName = req.CustomerName
		booking.CustomerContact = req.CustomerContact
		booking.CustomerEmail = req.CustomerEmail
		booking.Date = req.Date
		booking.Interval = interval
		booking.SlotsBooked = req.SlotsBooked
		booking.TotalPrice = total
		booking.AmountPaid = amountPaid
		booking.BalanceAmount = total - amountPaid
		booking.PaymentStatus = domain.DerivePaymentStatus(total, amountPaid)
		booking.DiscountAmount = req.DiscountAmount
		booking.DiscountReason = req.DiscountReason
		if rescheduled {
			booking.IsRescheduled = true
		}

		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		if err := uc.accessoryRepo.ReplaceBookingLines(txCtx, booking.ID, lines); err != nil {
			return fmt.Errorf("%w: failed to replace accessories: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 3. Уведомляем подписчиков только после успешного коммита
	uc.bus.Publish(events.BookingsUpdated)

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d, total=%.2f", result.ID, result.TotalPrice)

	return toResponse(result, lines), nil
}

func accessoryIDs(items []AccessoryItem) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.AccessoryID)
	}
	return ids
}

func toResponse(b *domain.Booking, lines []domain.AccessoryLine) *Response {
	respLines := make([]AccessoryLine, 0, len(lines))
	for _, line := range lines {
		respLines = append(respLines, AccessoryLine{
			AccessoryID:   line.AccessoryID,
			AccessoryName: line.AccessoryName,
			Quantity:      line.Quantity,
			Price:         line.PriceAtBooking,
		})
	}

	return &Response{
		ID:              b.ID,
		CourtID:         b.CourtID,
		CustomerName:    b.CustomerName,
		CustomerContact: b.CustomerContact,
		CustomerEmail:   b.CustomerEmail,
		Date:            b.Date,
		Interval:        b.Interval,
		TimeSlot:        b.TimeSlotLabel(),
		SlotsBooked:     b.SlotsBooked,
		TotalPrice:      b.TotalPrice,
		AmountPaid:      b.AmountPaid,
		BalanceAmount:   b.BalanceAmount,
		PaymentStatus:   string(b.PaymentStatus),
		Status:          string(b.Status),
		DiscountAmount:  b.DiscountAmount,
		DiscountReason:  b.DiscountReason,
		IsRescheduled:   b.IsRescheduled,
		Accessories:     respLines,
		UpdatedAt:       b.UpdatedAt,
	}
}

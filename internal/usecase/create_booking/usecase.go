package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
	courtRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/court"
	"github.com/arcsportszone/ARC-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// выборка бронирований корта на дату идет с FOR UPDATE, поэтому вторая
// из конкурирующих заявок видит результат первой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: court=%d, date=%s, time=%s-%s, slots=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.SlotsBooked)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим интервал (полуоткрытый [start, end))
	interval, err := domain.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		result *domain.Booking
		lines  []domain.AccessoryLine
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем корт с тарифом и емкостью
		court, err := uc.courtRepo.GetByID(txCtx, req.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				return ErrCourtNotFound
			}
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		// 3.2. Статус-оверрайд закрывает корт целиком
		if court.Status.IsOverride() {
			uc.logger.Warn("CreateBooking: court id=%d blocked by status %q", court.ID, court.Status)
			return fmt.Errorf("%w: %s", ErrCourtUnavailable, court.Status)
		}

		// 3.3. Получаем активные бронирования корта на дату с блокировкой
		bookings, err := uc.bookingRepo.ListForCourtDate(txCtx, req.CourtID, req.Date, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 3.4. Проверяем емкость по политике спорта
		policy := domain.PolicyFor(court.Capacity)
		availability := domain.ResolveAvailability(court.Status, policy, bookings, interval, req.SlotsBooked)
		if !availability.IsAvailable {
			uc.logger.Warn("CreateBooking: conflict on court id=%d, %d slots left",
				court.ID, availability.AvailableSlots)
			return &domain.SlotConflictError{
				AvailableSlots: availability.AvailableSlots,
				Capacity:       policy.Capacity(),
			}
		}

		// 3.5. Фиксируем цены аксессуаров на момент бронирования
		catalog, err := uc.accessoryRepo.GetByIDs(txCtx, accessoryIDs(req.Accessories))
		if err != nil {
			return fmt.Errorf("%w: failed to get accessories: %v", ErrInternal, err)
		}
		lines, err = resolveAccessoryLines(req.Accessories, catalog)
		if err != nil {
			return err
		}

		// 3.6. Считаем авторитетную цену на сервере; скидка применяется
		// только к стоимости корта
		courtPrice := policy.CourtPrice(court.Price, interval.DurationMinutes())
		if req.SlotsBooked > 1 {
			courtPrice *= float64(req.SlotsBooked)
		}
		if req.DiscountAmount > courtPrice {
			return fmt.Errorf("%w: discount=%.2f, court price=%.2f", ErrDiscountTooLarge, req.DiscountAmount, courtPrice)
		}

		total := domain.ComputeBookingPrice(policy, court.Price, interval.DurationMinutes(),
			req.SlotsBooked, domain.AccessoriesTotal(lines), req.DiscountAmount)

		if req.AmountPaid > total {
			return fmt.Errorf("%w: paid=%.2f, total=%.2f", ErrOverpayment, req.AmountPaid, total)
		}

		// 3.7. Создаем бронирование
		booking := &domain.Booking{
			CourtID:         court.ID,
			SportID:         court.SportID,
			CreatedByUserID: req.CreatedByUserID,
			CustomerName:    req.CustomerName,
			CustomerContact: req.CustomerContact,
			CustomerEmail:   req.CustomerEmail,
			Date:            req.Date,
			Interval:        interval,
			SlotsBooked:     req.SlotsBooked,
			TotalPrice:      total,
			AmountPaid:      req.AmountPaid,
			BalanceAmount:   total - req.AmountPaid,
			PaymentStatus:   domain.DerivePaymentStatus(total, req.AmountPaid),
			PaymentMode:     req.PaymentMode,
			PaymentID:       req.PaymentID,
			Status:          domain.StatusBooked,
			DiscountAmount:  req.DiscountAmount,
			DiscountReason:  req.DiscountReason,
			CourtName:       court.Name,
			SportName:       court.SportName,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.8. Сохраняем строки аксессуаров
		if err := uc.accessoryRepo.InsertBookingLines(txCtx, created.ID, lines); err != nil {
			return fmt.Errorf("%w: failed to save accessories: %v", ErrInternal, err)
		}

		// 3.9. Начальный платеж попадает в леджер; без внешней ссылки
		// генерируем свою, чтобы каждая запись была адресуема
		if req.AmountPaid > 0 {
			paymentMode := "Cash"
			if req.PaymentMode != nil {
				paymentMode = *req.PaymentMode
			}
			paymentID := req.PaymentID
			if paymentID == nil {
				paymentID = ptr.Ptr(uuid.NewString())
			}
			_, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
				BookingID:       created.ID,
				Amount:          req.AmountPaid,
				PaymentMode:     paymentMode,
				PaymentID:       paymentID,
				CreatedByUserID: req.CreatedByUserID,
			})
			if err != nil {
				return fmt.Errorf("%w: failed to record payment: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Уведомляем подписчиков только после успешного коммита
	uc.bus.Publish(events.BookingsUpdated)

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalPrice)

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
		CourtName:       b.CourtName,
		SportName:       b.SportName,
		CreatedByUserID: b.CreatedByUserID,
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
		Accessories:     respLines,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

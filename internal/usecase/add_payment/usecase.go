package add_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
	bookingRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/booking"
	"github.com/arcsportszone/ARC-BookingService/pkg/ptr"
)

// UseCase use case для внесения платежа по бронированию
type UseCase struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	bus         EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	bus EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		bus:         bus,
		logger:      logger,
	}
}

// Execute выполняет use case внесения платежа.
// Платеж дописывается в леджер, amount_paid пересчитывается суммой
// леджера внутри той же транзакции - кэшированное поле не накапливает
// расхождений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddPayment: booking=%d, amount=%.2f, mode=%s", req.BookingID, req.Amount, req.PaymentMode)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.PaymentMode) == "" {
		return nil, fmt.Errorf("%w: paymentMode is required", ErrInvalidInput)
	}

	var (
		booking *domain.Booking
		payment *domain.Payment
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки: конкурирующие
		// платежи по одному бронированию сериализуются здесь
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		if b.IsCancelled() {
			return ErrBookingCancelled
		}
		if b.BalanceAmount <= 0 {
			return ErrAlreadyPaid
		}
		if req.Amount > b.BalanceAmount {
			return fmt.Errorf("%w: amount=%.2f, balance=%.2f", ErrOverpayment, req.Amount, b.BalanceAmount)
		}

		// 2. Дописываем платеж в леджер; без внешней ссылки генерируем
		// свою, чтобы каждая запись была адресуема
		paymentID := req.PaymentID
		if paymentID == nil {
			paymentID = ptr.Ptr(uuid.NewString())
		}
		payment, err = uc.paymentRepo.Create(txCtx, &domain.Payment{
			BookingID:       b.ID,
			Amount:          req.Amount,
			PaymentMode:     req.PaymentMode,
			PaymentID:       paymentID,
			CreatedByUserID: req.CreatedByUserID,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to record payment: %v", ErrInternal, err)
		}

		// 3. Пересчитываем amount_paid суммой леджера
		amountPaid, err := uc.paymentRepo.SumByBookingID(txCtx, b.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to sum payments: %v", ErrInternal, err)
		}
		if amountPaid > b.TotalPrice {
			return fmt.Errorf("%w: paid=%.2f, total=%.2f", ErrOverpayment, amountPaid, b.TotalPrice)
		}

		status := domain.DerivePaymentStatus(b.TotalPrice, amountPaid)
		if err := uc.bookingRepo.UpdatePaymentTotals(txCtx, b.ID, b.TotalPrice, amountPaid, status); err != nil {
			return fmt.Errorf("%w: failed to update booking totals: %v", ErrInternal, err)
		}

		b.AmountPaid = amountPaid
		b.BalanceAmount = b.TotalPrice - amountPaid
		b.PaymentStatus = status

		booking = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.bus.Publish(events.BookingsUpdated)

	uc.logger.Info("AddPayment: payment id=%d recorded for booking id=%d, balance=%.2f",
		payment.ID, booking.ID, booking.BalanceAmount)

	return &Response{
		BookingID: booking.ID,
		PaymentRecord: PaymentRecord{
			ID:          payment.ID,
			Amount:      payment.Amount,
			PaymentMode: payment.PaymentMode,
			PaymentID:   payment.PaymentID,
			PaymentDate: payment.PaymentDate,
		},
		TotalPrice:    booking.TotalPrice,
		AmountPaid:    booking.AmountPaid,
		BalanceAmount: booking.BalanceAmount,
		PaymentStatus: string(booking.PaymentStatus),
	}, nil
}

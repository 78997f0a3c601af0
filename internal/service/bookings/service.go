package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arcsportszone/ARC-BookingService/internal/events"
	bookingRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/booking"
	"github.com/arcsportszone/ARC-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	bookingRepo   BookingRepository
	paymentRepo   PaymentRepository
	accessoryRepo AccessoryRepository
	txManager     TransactionManager
	bus           EventPublisher
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	accessoryRepo AccessoryRepository,
	txManager TransactionManager,
	bus EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		paymentRepo:   paymentRepo,
		accessoryRepo: accessoryRepo,
		txManager:     txManager,
		bus:           bus,
		logger:        logger,
	}
}

// GetByID получает бронирование с леджером платежей и аксессуарами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingDetailsResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	payments, err := s.paymentRepo.ListByBookingID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list payments for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to list payments: %v", ErrInternal, err)
	}

	lines, err := s.accessoryRepo.ListBookingLines(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list accessories for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to list accessories: %v", ErrInternal, err)
	}

	return &models.BookingDetailsResponse{
		BookingResponse: models.FromDomainBooking(booking),
		Payments:        models.FromDomainPayments(payments),
		Accessories:     models.FromDomainAccessoryLines(lines),
	}, nil
}

// ListForDate получает все активные бронирования на дату
func (s *Service) ListForDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.logger.Info("ListForDate: fetching bookings for date=%s", date.Format("2006-01-02"))

	bookings, err := s.bookingRepo.ListForDate(ctx, date)
	if err != nil {
		s.logger.Error("ListForDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	result := make([]models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, models.FromDomainBooking(b))
	}

	s.logger.Info("ListForDate: fetched %d bookings", len(result))
	return &models.BookingListResponse{Date: date, Bookings: result}, nil
}

// Cancel отменяет бронирование. Отмененное бронирование сразу перестает
// потреблять емкость корта, но остается в истории вместе с платежами
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - failed to get booking: %v", ErrInternal, err)
		}
		if booking.IsCancelled() {
			return ErrAlreadyCancelled
		}

		if err := s.bookingRepo.Cancel(txCtx, id); err != nil {
			return fmt.Errorf("%w: Cancel - failed to cancel booking: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.bus.Publish(events.BookingsUpdated)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

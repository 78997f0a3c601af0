package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
	bookingRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking     *domain.Booking
	bookings    []*domain.Booking
	getErr      error
	cancelledID int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) GetByIDWithDetails(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) ListForDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	f.cancelledID = id
	return nil
}

type fakePaymentRepo struct {
	payments []*domain.Payment
}

func (f *fakePaymentRepo) ListByBookingID(_ context.Context, _ int64) ([]*domain.Payment, error) {
	return f.payments, nil
}

type fakeAccessoryRepo struct {
	lines []domain.AccessoryLine
}

func (f *fakeAccessoryRepo) ListBookingLines(_ context.Context, _ int64) ([]domain.AccessoryLine, error) {
	return f.lines, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBus struct {
	published []events.Kind
}

func (f *fakeBus) Publish(kind events.Kind) { f.published = append(f.published, kind) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustInterval(t *testing.T, start, end int) domain.Interval {
	t.Helper()
	iv, err := domain.NewIntervalFromMinutes(start, end)
	require.NoError(t, err)
	return iv
}

func testBooking(t *testing.T) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:            5,
		CourtID:       1,
		CourtName:     "Court 1",
		SportName:     "Tennis",
		CustomerName:  "Rahul",
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Interval:      mustInterval(t, 9*60, 10*60),
		SlotsBooked:   1,
		TotalPrice:    500,
		AmountPaid:    200,
		BalanceAmount: 300,
		PaymentStatus: domain.PaymentReceived,
		Status:        domain.StatusBooked,
	}
}

func newTestService(bookings *fakeBookingRepo, payments *fakePaymentRepo, accessories *fakeAccessoryRepo, bus *fakeBus) *Service {
	return NewService(bookings, payments, accessories, fakeTxManager{}, bus, nopLogger{})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("FullDetails", func(t *testing.T) {
		payments := &fakePaymentRepo{payments: []*domain.Payment{
			{ID: 1, BookingID: 5, Amount: 200, PaymentMode: "Cash"},
		}}
		accessories := &fakeAccessoryRepo{lines: []domain.AccessoryLine{
			{BookingID: 5, AccessoryID: 7, AccessoryName: "Racket", Quantity: 2, PriceAtBooking: 60},
		}}
		svc := newTestService(&fakeBookingRepo{booking: testBooking(t)}, payments, accessories, &fakeBus{})

		resp, err := svc.GetByID(ctx, 5)
		require.NoError(t, err)

		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "Court 1", resp.CourtName)
		assert.Equal(t, "9:00 AM - 10:00 AM", resp.TimeSlot)
		require.Len(t, resp.Payments, 1)
		assert.InDelta(t, 200.0, resp.Payments[0].Amount, 0.001)
		require.Len(t, resp.Accessories, 1)
		assert.InDelta(t, 120.0, resp.Accessories[0].LineTotal, 0.001)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound},
			&fakePaymentRepo{}, &fakeAccessoryRepo{}, &fakeBus{})

		_, err := svc.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestListForDate(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{bookings: []*domain.Booking{testBooking(t)}},
			&fakePaymentRepo{}, &fakeAccessoryRepo{}, &fakeBus{})

		resp, err := svc.ListForDate(ctx, date)
		require.NoError(t, err)
		assert.Equal(t, date, resp.Date)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "Rahul", resp.Bookings[0].CustomerName)
	})

	t.Run("MissingDate", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{}, &fakePaymentRepo{}, &fakeAccessoryRepo{}, &fakeBus{})
		_, err := svc.ListForDate(ctx, time.Time{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookings := &fakeBookingRepo{booking: testBooking(t)}
		bus := &fakeBus{}
		svc := newTestService(bookings, &fakePaymentRepo{}, &fakeAccessoryRepo{}, bus)

		err := svc.Cancel(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), bookings.cancelledID)
		assert.Equal(t, []events.Kind{events.BookingsUpdated}, bus.published)
	})

	t.Run("AlreadyCancelled", func(t *testing.T) {
		booking := testBooking(t)
		booking.Status = domain.StatusCancelled
		bus := &fakeBus{}
		svc := newTestService(&fakeBookingRepo{booking: booking}, &fakePaymentRepo{}, &fakeAccessoryRepo{}, bus)

		err := svc.Cancel(ctx, 5)
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
		assert.Empty(t, bus.published)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound},
			&fakePaymentRepo{}, &fakeAccessoryRepo{}, &fakeBus{})

		err := svc.Cancel(ctx, 99)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

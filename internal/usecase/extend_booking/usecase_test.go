package extend_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
)

type fakeCourtRepo struct {
	court *domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, nil
}

type fakeBookingRepo struct {
	booking       *domain.Booking
	others        []*domain.Booking
	lastExcludeID *int64

	updatedInterval domain.Interval
	updatedTotal    float64
	updatedStatus   domain.PaymentStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, nil
}

func (f *fakeBookingRepo) ListForCourtDate(_ context.Context, _ int64, _ time.Time, excludeID *int64) ([]*domain.Booking, error) {
	f.lastExcludeID = excludeID
	return f.others, nil
}

func (f *fakeBookingRepo) UpdateInterval(_ context.Context, _ int64, interval domain.Interval, totalPrice, _ float64, status domain.PaymentStatus) error {
	f.updatedInterval = interval
	f.updatedTotal = totalPrice
	f.updatedStatus = status
	return nil
}

type fakeAccessoryRepo struct {
	lines []domain.AccessoryLine
}

func (f *fakeAccessoryRepo) ListBookingLines(_ context.Context, _ int64) ([]domain.AccessoryLine, error) {
	return f.lines, nil
}

type fakePaymentRepo struct {
	sum float64
}

func (f *fakePaymentRepo) SumByBookingID(_ context.Context, _ int64) (float64, error) {
	return f.sum, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

func bookedHour(t *testing.T) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:          5,
		CourtID:     1,
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Interval:    mustInterval(t, 18*60, 19*60),
		SlotsBooked: 1,
		TotalPrice:  500,
		Status:      domain.StatusBooked,
	}
}

func tennisCourt() *domain.Court {
	return &domain.Court{ID: 1, SportID: 10, Status: domain.CourtAvailable, Price: 500, Capacity: 1}
}

func newTestUseCase(bookings *fakeBookingRepo, accessories *fakeAccessoryRepo, payments *fakePaymentRepo, bus *fakeBus) *UseCase {
	return NewUseCase(&fakeCourtRepo{court: tennisCourt()}, bookings, accessories, payments,
		fakeTxManager{}, bus, nopLogger{})
}

func TestExtendBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookings := &fakeBookingRepo{booking: bookedHour(t)}
		bus := &fakeBus{}
		uc := newTestUseCase(bookings, &fakeAccessoryRepo{}, &fakePaymentRepo{sum: 500}, bus)

		resp, err := uc.Execute(ctx, &Request{BookingID: 5, ExtraMinutes: 30})
		require.NoError(t, err)

		assert.Equal(t, 19*60+30, resp.Interval.EndMinutes)
		assert.Equal(t, "6:00 PM - 7:30 PM", resp.TimeSlot)
		// 1.5 часа по 500/час, внесено 500
		assert.InDelta(t, 750.0, resp.TotalPrice, 0.001)
		assert.InDelta(t, 250.0, resp.BalanceAmount, 0.001)
		assert.Equal(t, string(domain.PaymentReceived), resp.PaymentStatus)
		assert.Equal(t, []events.Kind{events.BookingsUpdated}, bus.published)

		require.NotNil(t, bookings.lastExcludeID)
		assert.Equal(t, int64(5), *bookings.lastExcludeID)
	})

	t.Run("ConflictWithNextBooking", func(t *testing.T) {
		bookings := &fakeBookingRepo{
			booking: bookedHour(t),
			others: []*domain.Booking{{
				Interval:    mustInterval(t, 19*60, 20*60),
				SlotsBooked: 1,
				Status:      domain.StatusBooked,
			}},
		}
		uc := newTestUseCase(bookings, &fakeAccessoryRepo{}, &fakePaymentRepo{}, &fakeBus{})

		_, err := uc.Execute(ctx, &Request{BookingID: 5, ExtraMinutes: 30})
		var conflict *domain.SlotConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("AccessoriesAndDiscountPreserved", func(t *testing.T) {
		booking := bookedHour(t)
		booking.DiscountAmount = 100
		bookings := &fakeBookingRepo{booking: booking}
		accessories := &fakeAccessoryRepo{lines: []domain.AccessoryLine{
			{AccessoryID: 7, Quantity: 2, PriceAtBooking: 50},
		}}
		uc := newTestUseCase(bookings, accessories, &fakePaymentRepo{}, &fakeBus{})

		resp, err := uc.Execute(ctx, &Request{BookingID: 5, ExtraMinutes: 60})
		require.NoError(t, err)
		// 2 часа по 500 = 1000, минус скидка 100, плюс аксессуары 100
		assert.InDelta(t, 1000.0, resp.TotalPrice, 0.001)
	})

	t.Run("CancelledBookingRejected", func(t *testing.T) {
		booking := bookedHour(t)
		booking.Status = domain.StatusCancelled
		uc := newTestUseCase(&fakeBookingRepo{booking: booking}, &fakeAccessoryRepo{}, &fakePaymentRepo{}, &fakeBus{})

		_, err := uc.Execute(ctx, &Request{BookingID: 5, ExtraMinutes: 30})
		assert.ErrorIs(t, err, ErrBookingCancelled)
	})

	t.Run("PastMidnightRejected", func(t *testing.T) {
		booking := bookedHour(t)
		booking.Interval = mustInterval(t, 23*60, 23*60+30)
		uc := newTestUseCase(&fakeBookingRepo{booking: booking}, &fakeAccessoryRepo{}, &fakePaymentRepo{}, &fakeBus{})

		_, err := uc.Execute(ctx, &Request{BookingID: 5, ExtraMinutes: 60})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("InvalidExtraMinutes", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{booking: bookedHour(t)}, &fakeAccessoryRepo{}, &fakePaymentRepo{}, &fakeBus{})

		_, err := uc.Execute(ctx, &Request{BookingID: 5, ExtraMinutes: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{BookingID: 5, ExtraMinutes: domain.MaxExtendDurationMinutes + 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

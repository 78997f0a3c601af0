package add_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
)

type fakeBookingRepo struct {
	booking *domain.Booking

	updatedPaid   float64
	updatedStatus domain.PaymentStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, nil
}

func (f *fakeBookingRepo) UpdatePaymentTotals(_ context.Context, _ int64, _, amountPaid float64, status domain.PaymentStatus) error {
	f.updatedPaid = amountPaid
	f.updatedStatus = status
	return nil
}

type fakePaymentRepo struct {
	ledger []*domain.Payment
	nextID int64
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	p := *payment
	f.nextID++
	p.ID = f.nextID
	p.PaymentDate = time.Now()
	f.ledger = append(f.ledger, &p)
	return &p, nil
}

func (f *fakePaymentRepo) SumByBookingID(_ context.Context, _ int64) (float64, error) {
	sum := 0.0
	for _, p := range f.ledger {
		sum += p.Amount
	}
	return sum, nil
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

func bookingWithBalance(total, paid float64) *domain.Booking {
	return &domain.Booking{
		ID:            5,
		TotalPrice:    total,
		AmountPaid:    paid,
		BalanceAmount: total - paid,
		PaymentStatus: domain.DerivePaymentStatus(total, paid),
		Status:        domain.StatusBooked,
	}
}

func TestAddPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialPayment", func(t *testing.T) {
		bookings := &fakeBookingRepo{booking: bookingWithBalance(1000, 0)}
		payments := &fakePaymentRepo{}
		bus := &fakeBus{}
		uc := NewUseCase(bookings, payments, fakeTxManager{}, bus, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{BookingID: 5, Amount: 400, PaymentMode: "Cash"})
		require.NoError(t, err)

		assert.InDelta(t, 400.0, resp.AmountPaid, 0.001)
		assert.InDelta(t, 600.0, resp.BalanceAmount, 0.001)
		assert.Equal(t, string(domain.PaymentReceived), resp.PaymentStatus)
		assert.Equal(t, domain.PaymentReceived, bookings.updatedStatus)
		assert.Equal(t, []events.Kind{events.BookingsUpdated}, bus.published)
		require.Len(t, payments.ledger, 1)
	})

	t.Run("FinalPaymentCompletes", func(t *testing.T) {
		payments := &fakePaymentRepo{}
		_, err := payments.Create(ctx, &domain.Payment{BookingID: 5, Amount: 600, PaymentMode: "Cash"})
		require.NoError(t, err)

		bookings := &fakeBookingRepo{booking: bookingWithBalance(1000, 600)}
		uc := NewUseCase(bookings, payments, fakeTxManager{}, &fakeBus{}, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{BookingID: 5, Amount: 400, PaymentMode: "UPI"})
		require.NoError(t, err)
		assert.InDelta(t, 1000.0, resp.AmountPaid, 0.001)
		assert.InDelta(t, 0.0, resp.BalanceAmount, 0.001)
		assert.Equal(t, string(domain.PaymentCompleted), resp.PaymentStatus)
	})

	t.Run("GeneratesReferenceWhenMissing", func(t *testing.T) {
		bookings := &fakeBookingRepo{booking: bookingWithBalance(1000, 0)}
		payments := &fakePaymentRepo{}
		uc := NewUseCase(bookings, payments, fakeTxManager{}, &fakeBus{}, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{BookingID: 5, Amount: 400, PaymentMode: "Cash"})
		require.NoError(t, err)

		require.NotNil(t, resp.PaymentRecord.PaymentID)
		assert.NotEmpty(t, *resp.PaymentRecord.PaymentID)
		require.Len(t, payments.ledger, 1)
		assert.Equal(t, resp.PaymentRecord.PaymentID, payments.ledger[0].PaymentID)
	})

	t.Run("KeepsCallerReference", func(t *testing.T) {
		bookings := &fakeBookingRepo{booking: bookingWithBalance(1000, 0)}
		payments := &fakePaymentRepo{}
		uc := NewUseCase(bookings, payments, fakeTxManager{}, &fakeBus{}, nopLogger{})

		ref := "upi-txn-42"
		resp, err := uc.Execute(ctx, &Request{BookingID: 5, Amount: 400, PaymentMode: "UPI", PaymentID: &ref})
		require.NoError(t, err)

		require.NotNil(t, resp.PaymentRecord.PaymentID)
		assert.Equal(t, "upi-txn-42", *resp.PaymentRecord.PaymentID)
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		bookings := &fakeBookingRepo{booking: bookingWithBalance(1000, 1000)}
		uc := NewUseCase(bookings, &fakePaymentRepo{}, fakeTxManager{}, &fakeBus{}, nopLogger{})

		_, err := uc.Execute(ctx, &Request{BookingID: 5, Amount: 100, PaymentMode: "Cash"})
		assert.ErrorIs(t, err, ErrAlreadyPaid)
	})

	t.Run("Overpayment", func(t *testing.T) {
		bookings := &fakeBookingRepo{booking: bookingWithBalance(1000, 800)}
		bus := &fakeBus{}
		uc := NewUseCase(bookings, &fakePaymentRepo{}, fakeTxManager{}, bus, nopLogger{})

		_, err := uc.Execute(ctx, &Request{BookingID: 5, Amount: 300, PaymentMode: "Cash"})
		assert.ErrorIs(t, err, ErrOverpayment)
		assert.Empty(t, bus.published)
	})

	t.Run("CancelledBooking", func(t *testing.T) {
		booking := bookingWithBalance(1000, 0)
		booking.Status = domain.StatusCancelled
		uc := NewUseCase(&fakeBookingRepo{booking: booking}, &fakePaymentRepo{}, fakeTxManager{}, &fakeBus{}, nopLogger{})

		_, err := uc.Execute(ctx, &Request{BookingID: 5, Amount: 100, PaymentMode: "Cash"})
		assert.ErrorIs(t, err, ErrBookingCancelled)
	})

	t.Run("Validation", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, &fakePaymentRepo{}, fakeTxManager{}, &fakeBus{}, nopLogger{})

		_, err := uc.Execute(ctx, &Request{BookingID: 0, Amount: 100, PaymentMode: "Cash"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{BookingID: 5, Amount: 0, PaymentMode: "Cash"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{BookingID: 5, Amount: 100, PaymentMode: "  "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

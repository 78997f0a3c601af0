package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

type fakeCourtRepo struct {
	courts []*domain.Court
}

func (f *fakeCourtRepo) List(_ context.Context) ([]*domain.Court, error) {
	return f.courts, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListForDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

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

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	courts := &fakeCourtRepo{courts: []*domain.Court{
		{ID: 1, Name: "Court 1", SportName: "Tennis", Status: domain.CourtAvailable, Capacity: 1},
		{ID: 2, Name: "Turf A", SportName: "Cricket Net", Status: domain.CourtAvailable, Capacity: 4},
		{ID: 3, Name: "Court 3", SportName: "Tennis", Status: domain.CourtEvent, Capacity: 1},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{CourtID: 1, Interval: mustInterval(t, 9*60, 10*60), SlotsBooked: 1, Status: domain.StatusBooked},
		{CourtID: 2, Interval: mustInterval(t, 9*60, 10*60), SlotsBooked: 3, Status: domain.StatusBooked},
	}}

	uc := NewUseCase(courts, bookings, nopLogger{})

	t.Run("SliceAcrossAllCourts", func(t *testing.T) {
		resp, err := uc.Execute(ctx, &Request{
			Date:      date,
			StartTime: types.TimeString("09:00"),
			EndTime:   types.TimeString("10:00"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Courts, 3)

		// Эксклюзивный корт занят
		assert.False(t, resp.Courts[0].IsAvailable)
		assert.Equal(t, 0, resp.Courts[0].AvailableSlots)

		// На шеринговом корте остался один слот
		assert.True(t, resp.Courts[1].IsAvailable)
		assert.Equal(t, 1, resp.Courts[1].AvailableSlots)

		// Статус-оверрайд закрывает корт
		assert.False(t, resp.Courts[2].IsAvailable)
		require.NotNil(t, resp.Courts[2].OverrideStatus)
		assert.Equal(t, "Event", *resp.Courts[2].OverrideStatus)
	})

	t.Run("FreeInterval", func(t *testing.T) {
		resp, err := uc.Execute(ctx, &Request{
			Date:      date,
			StartTime: types.TimeString("14:00"),
			EndTime:   types.TimeString("15:00"),
		})
		require.NoError(t, err)

		assert.True(t, resp.Courts[0].IsAvailable)
		assert.Equal(t, 4, resp.Courts[1].AvailableSlots)
	})

	t.Run("Validation", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{StartTime: "09:00", EndTime: "10:00"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{Date: date, StartTime: "10:00", EndTime: "09:00"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

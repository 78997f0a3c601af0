package check_clash

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/pkg/ptr"
	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

type fakeCourtRepo struct {
	court *domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, nil
}

type fakeBookingRepo struct {
	bookings      []*domain.Booking
	lastExcludeID *int64
}

func (f *fakeBookingRepo) ListForCourtDate(_ context.Context, _ int64, _ time.Time, excludeID *int64) ([]*domain.Booking, error) {
	f.lastExcludeID = excludeID
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

func baseRequest() *Request {
	return &Request{
		CourtID:        1,
		Date:           time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      types.TimeString("09:00"),
		EndTime:        types.TimeString("10:00"),
		SlotsRequested: 1,
	}
}

func TestCheckClash(t *testing.T) {
	ctx := context.Background()

	t.Run("FreeSlot", func(t *testing.T) {
		court := &domain.Court{ID: 1, Status: domain.CourtAvailable, Capacity: 1}
		uc := NewUseCase(&fakeCourtRepo{court: court}, &fakeBookingRepo{}, nopLogger{})

		resp, err := uc.Execute(ctx, baseRequest())
		require.NoError(t, err)
		assert.True(t, resp.IsAvailable)
		assert.Equal(t, 1, resp.AvailableSlots)
		assert.Equal(t, 1, resp.Capacity)
		assert.Empty(t, resp.Message)
	})

	t.Run("ExclusiveCourtConflict", func(t *testing.T) {
		court := &domain.Court{ID: 1, Status: domain.CourtAvailable, Capacity: 1}
		bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
			Interval:    mustInterval(t, 9*60, 10*60),
			SlotsBooked: 1,
			Status:      domain.StatusBooked,
		}}}
		uc := NewUseCase(&fakeCourtRepo{court: court}, bookings, nopLogger{})

		resp, err := uc.Execute(ctx, baseRequest())
		require.NoError(t, err)
		assert.False(t, resp.IsAvailable)
		assert.Equal(t, "The selected time slot is unavailable.", resp.Message)
	})

	t.Run("SharedCourtPartial", func(t *testing.T) {
		court := &domain.Court{ID: 1, Status: domain.CourtAvailable, Capacity: 4}
		bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
			Interval:    mustInterval(t, 9*60, 10*60),
			SlotsBooked: 2,
			Status:      domain.StatusBooked,
		}}}
		uc := NewUseCase(&fakeCourtRepo{court: court}, bookings, nopLogger{})

		req := baseRequest()
		req.SlotsRequested = 3

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.False(t, resp.IsAvailable)
		assert.Equal(t, 2, resp.AvailableSlots)
		assert.Equal(t, "Not enough slots available. Only 2 slots left.", resp.Message)
	})

	t.Run("OverrideStatus", func(t *testing.T) {
		court := &domain.Court{ID: 1, Status: domain.CourtTournament, Capacity: 4}
		uc := NewUseCase(&fakeCourtRepo{court: court}, &fakeBookingRepo{}, nopLogger{})

		resp, err := uc.Execute(ctx, baseRequest())
		require.NoError(t, err)
		assert.False(t, resp.IsAvailable)
		require.NotNil(t, resp.OverrideStatus)
		assert.Equal(t, "Tournament", *resp.OverrideStatus)
		assert.Equal(t, "Court is not available: Tournament.", resp.Message)
	})

	t.Run("ExcludeBookingIDForwarded", func(t *testing.T) {
		court := &domain.Court{ID: 1, Status: domain.CourtAvailable, Capacity: 1}
		bookings := &fakeBookingRepo{}
		uc := NewUseCase(&fakeCourtRepo{court: court}, bookings, nopLogger{})

		req := baseRequest()
		req.ExcludeBookingID = ptr.Ptr(int64(5))

		_, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, bookings.lastExcludeID)
		assert.Equal(t, int64(5), *bookings.lastExcludeID)
	})

	t.Run("DefaultsToOneSlot", func(t *testing.T) {
		court := &domain.Court{ID: 1, Status: domain.CourtAvailable, Capacity: 4}
		uc := NewUseCase(&fakeCourtRepo{court: court}, &fakeBookingRepo{}, nopLogger{})

		req := baseRequest()
		req.SlotsRequested = 0

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.True(t, resp.IsAvailable)
	})

	t.Run("Validation", func(t *testing.T) {
		court := &domain.Court{ID: 1, Status: domain.CourtAvailable, Capacity: 1}
		uc := NewUseCase(&fakeCourtRepo{court: court}, &fakeBookingRepo{}, nopLogger{})

		req := baseRequest()
		req.CourtID = 0
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = baseRequest()
		req.EndTime = "08:00"
		_, err = uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

package get_heatmap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
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

func cellAt(t *testing.T, row CourtRow, startMinutes int) Cell {
	t.Helper()
	for _, cell := range row.Cells {
		if cell.Interval.StartMinutes == startMinutes {
			return cell
		}
	}
	t.Fatalf("no cell starting at %d minutes", startMinutes)
	return Cell{}
}

func TestGetHeatmap(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("GridBoundsAndCellWidth", func(t *testing.T) {
		courts := &fakeCourtRepo{courts: []*domain.Court{
			{ID: 1, Name: "Court 1", Status: domain.CourtAvailable, Capacity: 1},
		}}
		// Сетка 9:00 - 12:00, шесть получасовых ячеек
		uc := NewUseCase(courts, &fakeBookingRepo{}, 9*60, 12*60, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)
		require.Len(t, resp.Courts, 1)
		require.Len(t, resp.Courts[0].Cells, 6)

		first := resp.Courts[0].Cells[0]
		assert.Equal(t, 9*60, first.Interval.StartMinutes)
		assert.Equal(t, 9*60+30, first.Interval.EndMinutes)
		assert.Equal(t, "9:00 AM - 9:30 AM", first.Label)
		assert.Equal(t, CellAvailable, first.State)
	})

	t.Run("ExclusiveCourtBookedCells", func(t *testing.T) {
		courts := &fakeCourtRepo{courts: []*domain.Court{
			{ID: 1, Name: "Court 1", Status: domain.CourtAvailable, Capacity: 1},
		}}
		bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
			CourtID:     1,
			Interval:    mustInterval(t, 10*60, 11*60),
			SlotsBooked: 1,
			Status:      domain.StatusBooked,
		}}}
		uc := NewUseCase(courts, bookings, 9*60, 12*60, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)
		row := resp.Courts[0]

		assert.Equal(t, CellAvailable, cellAt(t, row, 9*60).State)
		assert.Equal(t, CellBooked, cellAt(t, row, 10*60).State)
		assert.Equal(t, CellBooked, cellAt(t, row, 10*60+30).State)
		// Полуоткрытый интервал: ячейка с 11:00 свободна
		assert.Equal(t, CellAvailable, cellAt(t, row, 11*60).State)
	})

	t.Run("SharedCourtPartialAndFull", func(t *testing.T) {
		courts := &fakeCourtRepo{courts: []*domain.Court{
			{ID: 2, Name: "Turf A", Status: domain.CourtAvailable, Capacity: 4},
		}}
		bookings := &fakeBookingRepo{bookings: []*domain.Booking{
			{CourtID: 2, Interval: mustInterval(t, 9*60, 10*60), SlotsBooked: 2, Status: domain.StatusBooked},
			{CourtID: 2, Interval: mustInterval(t, 10*60, 11*60), SlotsBooked: 4, Status: domain.StatusBooked},
		}}
		uc := NewUseCase(courts, bookings, 9*60, 12*60, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)
		row := resp.Courts[0]

		partial := cellAt(t, row, 9*60)
		assert.Equal(t, CellPartial, partial.State)
		assert.Equal(t, 2, partial.AvailableSlots)

		assert.Equal(t, CellFull, cellAt(t, row, 10*60).State)
		assert.Equal(t, CellAvailable, cellAt(t, row, 11*60).State)
	})

	t.Run("OverrideColorsWholeDay", func(t *testing.T) {
		courts := &fakeCourtRepo{courts: []*domain.Court{
			{ID: 1, Name: "Court 1", Status: domain.CourtUnderMaintenance, Capacity: 1},
		}}
		uc := NewUseCase(courts, &fakeBookingRepo{}, 9*60, 11*60, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)
		for _, cell := range resp.Courts[0].Cells {
			assert.Equal(t, "under maintenance", cell.State)
		}
	})

	t.Run("CancelledBookingsIgnored", func(t *testing.T) {
		courts := &fakeCourtRepo{courts: []*domain.Court{
			{ID: 1, Name: "Court 1", Status: domain.CourtAvailable, Capacity: 1},
		}}
		bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
			CourtID:     1,
			Interval:    mustInterval(t, 10*60, 11*60),
			SlotsBooked: 1,
			Status:      domain.StatusCancelled,
		}}}
		uc := NewUseCase(courts, bookings, 9*60, 12*60, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)
		assert.Equal(t, CellAvailable, cellAt(t, resp.Courts[0], 10*60).State)
	})

	t.Run("DefaultGridBounds", func(t *testing.T) {
		courts := &fakeCourtRepo{courts: []*domain.Court{
			{ID: 1, Name: "Court 1", Status: domain.CourtAvailable, Capacity: 1},
		}}
		uc := NewUseCase(courts, &fakeBookingRepo{}, 0, 0, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)
		// 05:00 - 23:00 это 36 получасовых ячеек
		assert.Len(t, resp.Courts[0].Cells, 36)
	})

	t.Run("MissingDate", func(t *testing.T) {
		uc := NewUseCase(&fakeCourtRepo{}, &fakeBookingRepo{}, 0, 0, nopLogger{})
		_, err := uc.Execute(ctx, &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

package courts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/internal/events"
	courtRepo "github.com/arcsportszone/ARC-BookingService/internal/infra/storage/court"
)

type fakeCourtRepo struct {
	courts        []*domain.Court
	updateErr     error
	updatedID     int64
	updatedStatus domain.CourtStatus
}

func (f *fakeCourtRepo) List(_ context.Context) ([]*domain.Court, error) {
	return f.courts, nil
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return nil, courtRepo.ErrCourtNotFound
}

func (f *fakeCourtRepo) UpdateStatus(_ context.Context, id int64, status domain.CourtStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

type fakeBus struct {
	published []events.Kind
}

func (f *fakeBus) Publish(kind events.Kind) { f.published = append(f.published, kind) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList(t *testing.T) {
	repo := &fakeCourtRepo{courts: []*domain.Court{
		{ID: 1, Name: "Court 1", SportID: 10, SportName: "Tennis", Price: 500, Capacity: 1, Status: domain.CourtAvailable},
		{ID: 2, Name: "Turf A", SportID: 20, SportName: "Cricket Net", Price: 200, Capacity: 4, Status: domain.CourtEvent},
	}}
	svc := NewService(repo, &fakeBus{}, nopLogger{})

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Tennis", result[0].SportName)
	assert.Equal(t, 4, result[1].Capacity)
	assert.Equal(t, "Event", result[1].Status)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &fakeCourtRepo{}
		bus := &fakeBus{}
		svc := NewService(repo, bus, nopLogger{})

		err := svc.UpdateStatus(ctx, 1, "Under Maintenance")
		require.NoError(t, err)
		assert.Equal(t, int64(1), repo.updatedID)
		assert.Equal(t, domain.CourtUnderMaintenance, repo.updatedStatus)
		assert.Equal(t, []events.Kind{events.CourtsUpdated}, bus.published)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		bus := &fakeBus{}
		svc := NewService(&fakeCourtRepo{}, bus, nopLogger{})

		err := svc.UpdateStatus(ctx, 1, "Closed")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Empty(t, bus.published)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := &fakeCourtRepo{updateErr: courtRepo.ErrCourtNotFound}
		svc := NewService(repo, &fakeBus{}, nopLogger{})

		err := svc.UpdateStatus(ctx, 99, "Available")
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})
}

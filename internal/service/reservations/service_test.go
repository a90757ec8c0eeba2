package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/DS-ReservationService/internal/service/reservations/models"
)

type fakeReservationRepo struct {
	byID          map[uuid.UUID]*domain.Reservation
	byRestaurant  []*domain.Reservation
	updatedID     uuid.UUID
	updatedStatus domain.ReservationStatus
	deletedID     uuid.UUID
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeReservationRepo) GetByUserID(_ context.Context, _ uuid.UUID, _ *domain.ReservationStatus) ([]*domain.Reservation, error) {
	return f.byRestaurant, nil
}

func (f *fakeReservationRepo) GetByRestaurantWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.byRestaurant, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ReservationStatus) error {
	if _, ok := f.byID[id]; !ok {
		return reservation.ErrReservationNotFound
	}
	f.updatedID = id
	f.updatedStatus = status
	f.byID[id].Status = status
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return reservation.ErrReservationNotFound
	}
	f.deletedID = id
	delete(f.byID, id)
	return nil
}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) GetByRestaurantID(_ context.Context, _ uuid.UUID) ([]*domain.Table, error) {
	return f.tables, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newReservation(status domain.ReservationStatus) *domain.Reservation {
	start := time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		GuestCount:   2,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		Status:       status,
	}
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		from       domain.ReservationStatus
		to         string
		force      bool
		wantStatus domain.ReservationStatus
		wantErr    error
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed", wantStatus: domain.StatusConfirmed},
		{name: "confirmed to seated", from: domain.StatusConfirmed, to: "seated", wantStatus: domain.StatusSeated},
		{name: "seated to completed", from: domain.StatusSeated, to: "completed", wantStatus: domain.StatusCompleted},
		{name: "pending cannot skip to seated", from: domain.StatusPending, to: "seated", wantErr: ErrInvalidTransition},
		{name: "completed is terminal", from: domain.StatusCompleted, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "force bypasses transition table", from: domain.StatusCompleted, to: "confirmed", force: true, wantStatus: domain.StatusConfirmed},
		{name: "unknown status rejected", from: domain.StatusPending, to: "waitlisted", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newReservation(tt.from)
			repo := &fakeReservationRepo{byID: map[uuid.UUID]*domain.Reservation{res.ID: res}}
			svc := NewService(repo, &fakeTableRepo{}, noopLogger{})

			got, err := svc.UpdateStatus(context.Background(), res.ID, models.UpdateStatusRequest{
				Status: tt.to,
				Force:  tt.force,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// Статус в хранилище не меняется
				assert.Equal(t, tt.from, repo.byID[res.ID].Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, res.ID, repo.updatedID)
			assert.Equal(t, tt.wantStatus, repo.updatedStatus)
		})
	}
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeReservationRepo{byID: map[uuid.UUID]*domain.Reservation{}}, &fakeTableRepo{}, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.ReservationStatus
		wantErr error
	}{
		{name: "pending can be cancelled", from: domain.StatusPending},
		{name: "confirmed can be cancelled", from: domain.StatusConfirmed},
		{name: "seated cannot be cancelled", from: domain.StatusSeated, wantErr: ErrCannotCancel},
		{name: "completed cannot be cancelled", from: domain.StatusCompleted, wantErr: ErrCannotCancel},
		{name: "cancelled cannot be cancelled twice", from: domain.StatusCancelled, wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newReservation(tt.from)
			repo := &fakeReservationRepo{byID: map[uuid.UUID]*domain.Reservation{res.ID: res}}
			svc := NewService(repo, &fakeTableRepo{}, noopLogger{})

			got, err := svc.Cancel(context.Background(), res.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, got.Status)
			assert.Equal(t, domain.StatusCancelled, repo.byID[res.ID].Status)
		})
	}
}

func TestService_Delete(t *testing.T) {
	res := newReservation(domain.StatusPending)
	repo := &fakeReservationRepo{byID: map[uuid.UUID]*domain.Reservation{res.ID: res}}
	svc := NewService(repo, &fakeTableRepo{}, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), res.ID))
	assert.Equal(t, res.ID, repo.deletedID)

	assert.ErrorIs(t, svc.Delete(context.Background(), res.ID), ErrReservationNotFound)
}

func TestService_LiveOccupancy(t *testing.T) {
	restaurantID := uuid.New()
	at := time.Date(2025, 6, 15, 19, 30, 0, 0, time.UTC)

	tableA := &domain.Table{ID: uuid.New(), RestaurantID: restaurantID, TableNumber: "T1", Capacity: 4}
	tableB := &domain.Table{ID: uuid.New(), RestaurantID: restaurantID, TableNumber: "T2", Capacity: 2}

	seated := newReservation(domain.StatusSeated)
	seated.RestaurantID = restaurantID
	seated.TableID = &tableA.ID

	cancelled := newReservation(domain.StatusCancelled)
	cancelled.RestaurantID = restaurantID
	cancelled.TableID = &tableB.ID

	repo := &fakeReservationRepo{byRestaurant: []*domain.Reservation{seated, cancelled}}
	svc := NewService(repo, &fakeTableRepo{tables: []*domain.Table{tableA, tableB}}, noopLogger{})

	occupancy, err := svc.LiveOccupancy(context.Background(), restaurantID, at)

	require.NoError(t, err)
	assert.Equal(t, restaurantID, occupancy.RestaurantID)
	assert.Len(t, occupancy.Tables, 2)
	require.Len(t, occupancy.OccupiedTables, 1)
	assert.Equal(t, tableA.ID, occupancy.OccupiedTables[0].Table.ID)
	assert.Equal(t, seated.ID, occupancy.OccupiedTables[0].Reservation.ID)
}

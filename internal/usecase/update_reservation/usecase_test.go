package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/DS-ReservationService/pkg/ptr"
)

type fakeReservationRepo struct {
	byID    map[uuid.UUID]*domain.Reservation
	day     []*domain.Reservation
	updated *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeReservationRepo) GetByRestaurantWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.day, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, reservation *domain.Reservation) error {
	if _, ok := f.byID[reservation.ID]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	copied := *reservation
	f.updated = &copied
	f.byID[reservation.ID] = &copied
	return nil
}

type fakeTableRepo struct {
	tables map[uuid.UUID]*domain.Table
}

func (f *fakeTableRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Table, error) {
	table, ok := f.tables[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	return table, nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Restaurant, error) {
	return f.restaurant, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc              *UseCase
	reservationRepo *fakeReservationRepo
	reservation     *domain.Reservation
	restaurantID    uuid.UUID
	tableID         uuid.UUID
}

func newFixture(t *testing.T, status domain.ReservationStatus) *fixture {
	t.Helper()

	restaurantID := uuid.New()
	tableID := uuid.New()
	start := time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)

	// 2 гостя при базовом turnover 120: занятость [19:00, 21:00)
	reservation := &domain.Reservation{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		TableID:      &tableID,
		GuestCount:   2,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		Status:       status,
	}

	reservations := &fakeReservationRepo{
		byID: map[uuid.UUID]*domain.Reservation{reservation.ID: reservation},
		day:  []*domain.Reservation{reservation},
	}

	uc := NewUseCase(
		reservations,
		&fakeTableRepo{tables: map[uuid.UUID]*domain.Table{
			tableID: {ID: tableID, RestaurantID: restaurantID, TableNumber: "T1", Capacity: 4},
		}},
		&fakeRestaurantRepo{restaurant: &domain.Restaurant{
			ID:                  restaurantID,
			Name:                "Тестовый ресторан",
			TurnDurationMinutes: 120,
			OpeningTime:         "12:00",
			ClosingTime:         "23:00",
		}},
		&fakeTxManager{},
		noopLogger{},
	)

	return &fixture{
		uc:              uc,
		reservationRepo: reservations,
		reservation:     reservation,
		restaurantID:    restaurantID,
		tableID:         tableID,
	}
}

func TestUseCase_Execute_RecomputesEndTimeOnPartySizeChange(t *testing.T) {
	f := newFixture(t, domain.StatusPending)

	// 4 гостя: turnover 120+30, время окончания сдвигается на полчаса
	resp, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: f.reservation.ID,
		GuestCount:    ptr.Ptr(4),
	})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.GuestCount)
	assert.Equal(t, f.reservation.StartTime, resp.StartTime)
	assert.Equal(t, f.reservation.StartTime.Add(150*time.Minute), resp.EndTime)

	require.NotNil(t, f.reservationRepo.updated)
	assert.Equal(t, resp.EndTime, f.reservationRepo.updated.EndTime)
}

func TestUseCase_Execute_RecomputesEndTimeOnStartTimeChange(t *testing.T) {
	f := newFixture(t, domain.StatusConfirmed)
	newStart := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: f.reservation.ID,
		StartTime:     &newStart,
	})

	require.NoError(t, err)
	assert.Equal(t, newStart, resp.StartTime)
	assert.Equal(t, newStart.Add(2*time.Hour), resp.EndTime)
}

func TestUseCase_Execute_ExcludesItselfFromConflictCheck(t *testing.T) {
	f := newFixture(t, domain.StatusPending)

	// Сдвиг на полчаса внутрь собственного интервала занятости
	newStart := f.reservation.StartTime.Add(30 * time.Minute)

	resp, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: f.reservation.ID,
		StartTime:     &newStart,
	})

	require.NoError(t, err)
	assert.Equal(t, newStart, resp.StartTime)
}

func TestUseCase_Execute_ConflictWithAnotherReservation(t *testing.T) {
	f := newFixture(t, domain.StatusPending)

	// Другое бронирование занимает стол [21:00, 23:00)
	otherStart := f.reservation.StartTime.Add(2 * time.Hour)
	f.reservationRepo.day = append(f.reservationRepo.day, &domain.Reservation{
		ID:           uuid.New(),
		RestaurantID: f.restaurantID,
		TableID:      &f.tableID,
		GuestCount:   2,
		StartTime:    otherStart,
		EndTime:      otherStart.Add(2 * time.Hour),
		Status:       domain.StatusConfirmed,
	})

	newStart := f.reservation.StartTime.Add(3 * time.Hour)
	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: f.reservation.ID,
		StartTime:     &newStart,
	})

	assert.ErrorIs(t, err, ErrTableNotAvailable)
	assert.Nil(t, f.reservationRepo.updated)
}

func TestUseCase_Execute_NotEditableStatuses(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusSeated,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t, status)

			_, err := f.uc.Execute(context.Background(), &Request{
				ReservationID: f.reservation.ID,
				GuestCount:    ptr.Ptr(3),
			})

			assert.ErrorIs(t, err, ErrNotEditable)
		})
	}
}

func TestUseCase_Execute_TableTooSmallAfterGuestIncrease(t *testing.T) {
	f := newFixture(t, domain.StatusPending)

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: f.reservation.ID,
		GuestCount:    ptr.Ptr(6),
	})

	assert.ErrorIs(t, err, ErrTableTooSmall)
}

func TestUseCase_Execute_OutsideOpeningHours(t *testing.T) {
	f := newFixture(t, domain.StatusPending)
	newStart := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: f.reservation.ID,
		StartTime:     &newStart,
	})

	assert.ErrorIs(t, err, ErrOutsideOpeningHours)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	f := newFixture(t, domain.StatusPending)

	_, err := f.uc.Execute(context.Background(), &Request{
		ReservationID: uuid.New(),
		GuestCount:    ptr.Ptr(3),
	})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	f := newFixture(t, domain.StatusPending)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing reservation id", req: &Request{GuestCount: ptr.Ptr(3)}},
		{name: "party above limit", req: &Request{ReservationID: f.reservation.ID, GuestCount: ptr.Ptr(domain.MaxPartySize + 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

package tables

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/DS-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/DS-ReservationService/internal/service/tables/models"
	"github.com/m04kA/DS-ReservationService/pkg/ptr"
)

type fakeTableRepo struct {
	byID map[uuid.UUID]*domain.Table
}

func (f *fakeTableRepo) Create(_ context.Context, t *domain.Table) (*domain.Table, error) {
	f.byID[t.ID] = t
	return t, nil
}

func (f *fakeTableRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Table, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, table.ErrTableNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTableRepo) GetByRestaurantID(_ context.Context, restaurantID uuid.UUID) ([]*domain.Table, error) {
	items := make([]*domain.Table, 0, len(f.byID))
	for _, t := range f.byID {
		if t.RestaurantID == restaurantID {
			items = append(items, t)
		}
	}
	return items, nil
}

func (f *fakeTableRepo) Update(_ context.Context, t *domain.Table) error {
	if _, ok := f.byID[t.ID]; !ok {
		return table.ErrTableNotFound
	}
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTableRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return table.ErrTableNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	if f.restaurant == nil || f.restaurant.ID != id {
		return nil, restaurant.ErrRestaurantNotFound
	}
	return f.restaurant, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) (*Service, *fakeTableRepo, uuid.UUID) {
	t.Helper()

	restaurantID := uuid.New()
	repo := &fakeTableRepo{byID: make(map[uuid.UUID]*domain.Table)}
	svc := NewService(repo, &fakeRestaurantRepo{restaurant: &domain.Restaurant{
		ID:        restaurantID,
		Name:      "Тестовый ресторан",
		FloorPlan: domain.DefaultFloorPlanMeta(),
	}}, noopLogger{})

	return svc, repo, restaurantID
}

func TestService_Create(t *testing.T) {
	svc, repo, restaurantID := newService(t)

	created, err := svc.Create(context.Background(), models.CreateTableRequest{
		RestaurantID: restaurantID,
		TableNumber:  "T1",
		Capacity:     4,
		Shape:        "square",
		X:            107,
		Y:            33,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ShapeSquare, created.Shape)
	// Координаты привязаны к сетке ресторана
	assert.Equal(t, 100.0, created.X)
	assert.Equal(t, 40.0, created.Y)
	assert.Equal(t, 0, created.Rotation)
	assert.Contains(t, repo.byID, created.ID)
}

func TestService_Create_InvalidInput(t *testing.T) {
	svc, _, restaurantID := newService(t)

	tests := []struct {
		name string
		req  models.CreateTableRequest
	}{
		{
			name: "unknown shape",
			req:  models.CreateTableRequest{RestaurantID: restaurantID, TableNumber: "T1", Capacity: 4, Shape: "oval"},
		},
		{
			name: "zero capacity",
			req:  models.CreateTableRequest{RestaurantID: restaurantID, TableNumber: "T1", Capacity: 0, Shape: "square"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Update(t *testing.T) {
	svc, repo, restaurantID := newService(t)
	existing := &domain.Table{
		ID: uuid.New(), RestaurantID: restaurantID, TableNumber: "T1",
		Capacity: 4, Shape: domain.ShapeSquare, X: 100, Y: 100,
	}
	repo.byID[existing.ID] = existing

	t.Run("partial update snaps coordinates", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), existing.ID, models.UpdateTableRequest{
			X:        ptr.Ptr(213.0),
			Capacity: ptr.Ptr(6),
		})

		require.NoError(t, err)
		assert.Equal(t, 220.0, updated.X)
		assert.Equal(t, 6, updated.Capacity)
		assert.Equal(t, "T1", updated.TableNumber)
	})

	t.Run("invalid rotation rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), existing.ID, models.UpdateTableRequest{
			Rotation: ptr.Ptr(45),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := svc.Update(context.Background(), uuid.New(), models.UpdateTableRequest{})
		assert.ErrorIs(t, err, ErrTableNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	svc, repo, restaurantID := newService(t)
	existing := &domain.Table{
		ID: uuid.New(), RestaurantID: restaurantID, TableNumber: "T1",
		Capacity: 4, Shape: domain.ShapeSquare, X: 100, Y: 100,
	}
	repo.byID[existing.ID] = existing

	// История бронирований стола: на id нет внешнего ключа, удаление
	// стола не трогает прошлые записи
	start := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	history := &domain.Reservation{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		TableID:      &existing.ID,
		GuestCount:   2,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		Status:       domain.StatusCompleted,
	}

	require.NoError(t, svc.Delete(context.Background(), existing.ID))
	assert.NotContains(t, repo.byID, existing.ID)

	// Завершенное бронирование сохраняет ссылку на id удаленного стола
	require.NotNil(t, history.TableID)
	assert.Equal(t, existing.ID, *history.TableID)

	t.Run("second delete fails", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(context.Background(), existing.ID), ErrTableNotFound)
	})
}

package floorplans

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/DS-ReservationService/internal/service/floorplans/models"
	"github.com/m04kA/DS-ReservationService/pkg/ptr"
)

type fakeRestaurantRepo struct {
	restaurant  *domain.Restaurant
	savedMeta   *domain.FloorPlanMeta
	metaUpdates int
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	if f.restaurant == nil || f.restaurant.ID != id {
		return nil, restaurant.ErrRestaurantNotFound
	}
	return f.restaurant, nil
}

func (f *fakeRestaurantRepo) UpdateFloorPlanMeta(_ context.Context, _ uuid.UUID, meta domain.FloorPlanMeta) error {
	f.savedMeta = &meta
	f.metaUpdates++
	return nil
}

type fakeTableRepo struct {
	tables    []*domain.Table
	failForID uuid.UUID
	saved     map[uuid.UUID]*domain.Table
}

func (f *fakeTableRepo) GetByRestaurantID(_ context.Context, _ uuid.UUID) ([]*domain.Table, error) {
	return f.tables, nil
}

func (f *fakeTableRepo) UpdateGeometry(_ context.Context, _ uuid.UUID, table *domain.Table) error {
	if table.ID == f.failForID {
		return errors.New("no rows")
	}
	if f.saved == nil {
		f.saved = make(map[uuid.UUID]*domain.Table)
	}
	f.saved[table.ID] = table
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc            *Service
	restaurantRepo *fakeRestaurantRepo
	tableRepo      *fakeTableRepo
	restaurantID   uuid.UUID
	tableA         *domain.Table
	tableB         *domain.Table
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	restaurantID := uuid.New()
	tableA := &domain.Table{ID: uuid.New(), RestaurantID: restaurantID, TableNumber: "T1", Capacity: 4, Shape: domain.ShapeSquare, X: 100, Y: 100}
	tableB := &domain.Table{ID: uuid.New(), RestaurantID: restaurantID, TableNumber: "T2", Capacity: 2, Shape: domain.ShapeRound, X: 300, Y: 200}

	restaurantRepo := &fakeRestaurantRepo{
		restaurant: &domain.Restaurant{
			ID:        restaurantID,
			Name:      "Тестовый ресторан",
			FloorPlan: domain.DefaultFloorPlanMeta(),
		},
	}
	tableRepo := &fakeTableRepo{tables: []*domain.Table{tableA, tableB}}

	return &fixture{
		svc:            NewService(restaurantRepo, tableRepo, noopLogger{}),
		restaurantRepo: restaurantRepo,
		tableRepo:      tableRepo,
		restaurantID:   restaurantID,
		tableA:         tableA,
		tableB:         tableB,
	}
}

func TestService_Save(t *testing.T) {
	f := newFixture(t)
	f.restaurantRepo.restaurant.FloorPlan.Zones = []string{"терраса"}

	snapshot, err := f.svc.Save(context.Background(), f.restaurantID, models.SaveRequest{
		Tables: []models.TableGeometry{
			{ID: f.tableA.ID, X: 207, Y: 113, Rotation: ptr.Ptr(90)},
			{ID: f.tableB.ID, X: 400, Y: 400},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, snapshot)

	// Геометрия прошла через сессию: привязка к сетке 20
	savedA := f.tableRepo.saved[f.tableA.ID]
	require.NotNil(t, savedA)
	assert.Equal(t, 200.0, savedA.X)
	assert.Equal(t, 120.0, savedA.Y)
	assert.Equal(t, 90, savedA.Rotation)

	// Метаданные записаны, зоны перенесены из текущих настроек
	require.NotNil(t, f.restaurantRepo.savedMeta)
	assert.Equal(t, []string{"терраса"}, f.restaurantRepo.savedMeta.Zones)
}

func TestService_Save_PartialFailure(t *testing.T) {
	f := newFixture(t)
	f.tableRepo.failForID = f.tableA.ID

	snapshot, err := f.svc.Save(context.Background(), f.restaurantID, models.SaveRequest{
		Tables: []models.TableGeometry{
			{ID: f.tableA.ID, X: 200, Y: 120},
			{ID: f.tableB.ID, X: 400, Y: 400},
		},
	})

	assert.ErrorIs(t, err, ErrPartialSave)

	// Снимок возвращается и при частичном отказе
	require.NotNil(t, snapshot)
	assert.Len(t, snapshot.Tables, 2)

	// Метаданные и успешные столы записаны, откатов нет
	assert.Equal(t, 1, f.restaurantRepo.metaUpdates)
	assert.Contains(t, f.tableRepo.saved, f.tableB.ID)
	assert.NotContains(t, f.tableRepo.saved, f.tableA.ID)
}

func TestService_Save_InvalidRotation(t *testing.T) {
	f := newFixture(t)

	snapshot, err := f.svc.Save(context.Background(), f.restaurantID, models.SaveRequest{
		Tables: []models.TableGeometry{
			{ID: f.tableA.ID, X: 200, Y: 120, Rotation: ptr.Ptr(45)},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidGeometry)
	assert.Nil(t, snapshot)

	// Отказ до любой записи: ни метаданные, ни геометрия не тронуты
	assert.Zero(t, f.restaurantRepo.metaUpdates)
	assert.Empty(t, f.tableRepo.saved)
}

func TestService_Save_UnknownTableSkipped(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Save(context.Background(), f.restaurantID, models.SaveRequest{
		Tables: []models.TableGeometry{
			{ID: uuid.New(), X: 200, Y: 120},
			{ID: f.tableB.ID, X: 400, Y: 400},
		},
	})

	require.NoError(t, err)
	require.Len(t, f.tableRepo.saved, 1)
	assert.Contains(t, f.tableRepo.saved, f.tableB.ID)
}

func TestService_Save_RestaurantNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Save(context.Background(), uuid.New(), models.SaveRequest{})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestService_Get(t *testing.T) {
	f := newFixture(t)

	snapshot, err := f.svc.Get(context.Background(), f.restaurantID)

	require.NoError(t, err)
	assert.Equal(t, f.restaurantID, snapshot.RestaurantID)
	assert.Equal(t, f.restaurantRepo.restaurant.FloorPlan, snapshot.Meta)
	assert.Len(t, snapshot.Tables, 2)
}

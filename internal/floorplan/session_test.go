package floorplan

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

func newTestSession() *Session {
	return NewSession(uuid.New(), Options{})
}

func TestSession_AddTable(t *testing.T) {
	session := newTestSession()

	table := session.AddTable(TableSpec{
		TableNumber: "T1",
		Capacity:    4,
		Shape:       domain.ShapeSquare,
		X:           107,
		Y:           33,
	})

	require.NotNil(t, table)
	assert.NotEqual(t, uuid.Nil, table.ID)
	// Координаты привязаны к сетке 20
	assert.Equal(t, 100.0, table.X)
	assert.Equal(t, 40.0, table.Y)
	assert.Equal(t, 0, table.Rotation)

	// Новый стол становится выделенным
	selected := session.SelectedTableID()
	require.NotNil(t, selected)
	assert.Equal(t, table.ID, *selected)

	assert.Len(t, session.Tables(), 1)
}

func TestSession_UpdateTable(t *testing.T) {
	session := newTestSession()
	table := session.AddTable(TableSpec{TableNumber: "T1", Capacity: 4, Shape: domain.ShapeSquare})

	t.Run("partial update touches only set fields", func(t *testing.T) {
		capacity := 6
		x := 213.0
		session.UpdateTable(table.ID, TableUpdate{Capacity: &capacity, X: &x})

		got := session.Tables()[0]
		assert.Equal(t, 6, got.Capacity)
		assert.Equal(t, 220.0, got.X) // привязано к сетке
		assert.Equal(t, "T1", got.TableNumber)
		assert.Equal(t, domain.ShapeSquare, got.Shape)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		capacity := 99
		session.UpdateTable(uuid.New(), TableUpdate{Capacity: &capacity})
		assert.Equal(t, 6, session.Tables()[0].Capacity)
	})
}

func TestSession_MoveTable(t *testing.T) {
	session := newTestSession()
	table := session.AddTable(TableSpec{TableNumber: "T1", Capacity: 4, Shape: domain.ShapeSquare})

	tests := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{name: "inside canvas snaps to grid", x: 207, y: 113, wantX: 200, wantY: 120},
		{name: "negative coordinates clamp to zero", x: -50, y: -10, wantX: 0, wantY: 0},
		// Канвас 1200x800, footprint 100: максимум (1100, 700)
		{name: "beyond canvas clamps to edge", x: 5000, y: 5000, wantX: 1100, wantY: 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session.MoveTable(table.ID, tt.x, tt.y)

			got := session.Tables()[0]
			assert.Equal(t, tt.wantX, got.X)
			assert.Equal(t, tt.wantY, got.Y)
		})
	}
}

func TestSession_RotateTable(t *testing.T) {
	session := newTestSession()
	table := session.AddTable(TableSpec{TableNumber: "T1", Capacity: 4, Shape: domain.ShapeRectangle})

	for _, want := range []int{90, 180, 270, 0} {
		session.RotateTable(table.ID)
		assert.Equal(t, want, session.Tables()[0].Rotation)
	}

	// Неизвестный id ничего не меняет
	session.RotateTable(uuid.New())
	assert.Equal(t, 0, session.Tables()[0].Rotation)
}

func TestSession_DuplicateTable(t *testing.T) {
	session := newTestSession()
	width := 160.0
	original := session.AddTable(TableSpec{
		TableNumber: "T1",
		Capacity:    4,
		Shape:       domain.ShapeRectangle,
		X:           100,
		Y:           200,
		Width:       &width,
	})

	clone := session.DuplicateTable(original.ID)

	require.NotNil(t, clone)
	assert.NotEqual(t, original.ID, clone.ID)
	assert.Equal(t, "T1-copy", clone.TableNumber)
	assert.Equal(t, 140.0, clone.X)
	assert.Equal(t, 240.0, clone.Y)
	assert.Equal(t, original.Capacity, clone.Capacity)
	assert.Equal(t, original.Shape, clone.Shape)
	assert.Equal(t, original.Width, clone.Width)

	// Копия становится выделенной
	selected := session.SelectedTableID()
	require.NotNil(t, selected)
	assert.Equal(t, clone.ID, *selected)

	assert.Len(t, session.Tables(), 2)

	t.Run("unknown id returns nil", func(t *testing.T) {
		assert.Nil(t, session.DuplicateTable(uuid.New()))
		assert.Len(t, session.Tables(), 2)
	})
}

func TestSession_DeleteTable(t *testing.T) {
	session := newTestSession()
	first := session.AddTable(TableSpec{TableNumber: "T1", Capacity: 4, Shape: domain.ShapeSquare})
	second := session.AddTable(TableSpec{TableNumber: "T2", Capacity: 2, Shape: domain.ShapeRound})

	t.Run("deleting selected table clears selection", func(t *testing.T) {
		session.SelectTable(&second.ID)
		session.DeleteTable(second.ID)

		assert.Nil(t, session.SelectedTableID())
		require.Len(t, session.Tables(), 1)
		assert.Equal(t, first.ID, session.Tables()[0].ID)
	})

	t.Run("deleting another table keeps selection", func(t *testing.T) {
		third := session.AddTable(TableSpec{TableNumber: "T3", Capacity: 2, Shape: domain.ShapeRound})
		session.SelectTable(&first.ID)
		session.DeleteTable(third.ID)

		selected := session.SelectedTableID()
		require.NotNil(t, selected)
		assert.Equal(t, first.ID, *selected)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := len(session.Tables())
		session.DeleteTable(uuid.New())
		assert.Len(t, session.Tables(), before)
	})
}

func TestSession_LoadTables(t *testing.T) {
	session := newTestSession()
	session.AddTable(TableSpec{TableNumber: "stale", Capacity: 2, Shape: domain.ShapeSquare})

	saved := []*domain.Table{
		{ID: uuid.New(), TableNumber: "T1", Capacity: 4, Shape: domain.ShapeSquare, X: 100, Y: 100},
		{ID: uuid.New(), TableNumber: "T2", Capacity: 2, Shape: domain.ShapeRound, X: 300, Y: 200},
	}

	session.LoadTables(saved)

	assert.Nil(t, session.SelectedTableID())
	loaded := session.Tables()
	require.Len(t, loaded, 2)
	assert.Equal(t, "T1", loaded[0].TableNumber)
	assert.Equal(t, "T2", loaded[1].TableNumber)

	// Сессия работает с копиями: изменение исходного слайса ее не затрагивает
	saved[0].TableNumber = "mutated"
	assert.Equal(t, "T1", session.Tables()[0].TableNumber)
}

func TestSession_Reset(t *testing.T) {
	session := newTestSession()
	background := "https://cdn.example.com/plan.png"

	table := session.AddTable(TableSpec{TableNumber: "T1", Capacity: 4, Shape: domain.ShapeSquare})
	session.SelectTable(&table.ID)
	session.SetDragging(true)
	session.SetBackgroundImage(&background)

	session.Reset()

	assert.Empty(t, session.Tables())
	assert.Nil(t, session.SelectedTableID())
	assert.False(t, session.IsDragging())
	assert.Nil(t, session.BackgroundImage())
}

func TestSession_Snapshot(t *testing.T) {
	restaurantID := uuid.New()
	background := "https://cdn.example.com/plan.png"

	session := NewSession(restaurantID, Options{GridSize: 10, CanvasWidth: 1000, CanvasHeight: 600})
	session.SetBackgroundImage(&background)
	session.AddTable(TableSpec{TableNumber: "T1", Capacity: 4, Shape: domain.ShapeSquare, X: 105, Y: 95})

	snapshot := session.Snapshot()

	assert.Equal(t, restaurantID, snapshot.RestaurantID)
	assert.Equal(t, domain.FloorPlanVersion, snapshot.Meta.Version)
	assert.Equal(t, 1000.0, snapshot.Meta.CanvasWidth)
	assert.Equal(t, 600.0, snapshot.Meta.CanvasHeight)
	assert.Equal(t, 10.0, snapshot.Meta.GridSize)
	require.NotNil(t, snapshot.Meta.BackgroundImage)
	assert.Equal(t, background, *snapshot.Meta.BackgroundImage)
	require.Len(t, snapshot.Tables, 1)
	assert.Equal(t, 110.0, snapshot.Tables[0].X)
	assert.Equal(t, 100.0, snapshot.Tables[0].Y)
}

func TestNewSession_Defaults(t *testing.T) {
	session := NewSession(uuid.New(), Options{GridSize: -1})
	snapshot := session.Snapshot()

	assert.Equal(t, domain.DefaultGridSize, snapshot.Meta.GridSize)
	assert.Equal(t, domain.DefaultCanvasWidth, snapshot.Meta.CanvasWidth)
	assert.Equal(t, domain.DefaultCanvasHeight, snapshot.Meta.CanvasHeight)
}

package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseTableShape(t *testing.T) {
	for _, valid := range []string{"square", "round", "rectangle"} {
		t.Run(valid, func(t *testing.T) {
			shape, err := ParseTableShape(valid)
			assert.NoError(t, err)
			assert.Equal(t, TableShape(valid), shape)
		})
	}

	t.Run("unknown shape", func(t *testing.T) {
		_, err := ParseTableShape("oval")
		assert.ErrorIs(t, err, ErrInvalidShape)
	})
}

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		gridSize float64
		want     float64
	}{
		{name: "already aligned", value: 100, gridSize: 20, want: 100},
		{name: "rounds down", value: 107, gridSize: 20, want: 100},
		{name: "rounds up", value: 113, gridSize: 20, want: 120},
		{name: "midpoint rounds away from zero", value: 110, gridSize: 20, want: 120},
		{name: "zero value", value: 0, gridSize: 20, want: 0},
		{name: "non-positive grid is identity", value: 107, gridSize: 0, want: 107},
		{name: "fine grid", value: 12.3, gridSize: 5, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SnapToGrid(tt.value, tt.gridSize), 1e-9)
		})
	}
}

func TestIsValidRotation(t *testing.T) {
	for _, valid := range []int{0, 90, 180, 270} {
		assert.True(t, IsValidRotation(valid))
	}
	for _, invalid := range []int{-90, 45, 360, 1} {
		assert.False(t, IsValidRotation(invalid))
	}
}

func TestNextRotation(t *testing.T) {
	assert.Equal(t, 90, NextRotation(0))
	assert.Equal(t, 180, NextRotation(90))
	assert.Equal(t, 270, NextRotation(180))
	assert.Equal(t, 0, NextRotation(270))

	// Четыре поворота возвращают исходный угол
	rotation := 0
	for i := 0; i < 4; i++ {
		rotation = NextRotation(rotation)
	}
	assert.Equal(t, 0, rotation)
}

func TestTable_Validate(t *testing.T) {
	valid := func() *Table {
		return &Table{
			ID:           uuid.New(),
			RestaurantID: uuid.New(),
			TableNumber:  "T1",
			Capacity:     4,
			Shape:        ShapeSquare,
			X:            100,
			Y:            200,
			Rotation:     0,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Table)
		wantErr error
	}{
		{name: "valid table", mutate: func(*Table) {}, wantErr: nil},
		{name: "zero capacity", mutate: func(tb *Table) { tb.Capacity = 0 }, wantErr: ErrInvalidCapacity},
		{name: "negative capacity", mutate: func(tb *Table) { tb.Capacity = -2 }, wantErr: ErrInvalidCapacity},
		{name: "unknown shape", mutate: func(tb *Table) { tb.Shape = "oval" }, wantErr: ErrInvalidShape},
		{name: "diagonal rotation", mutate: func(tb *Table) { tb.Rotation = 45 }, wantErr: ErrInvalidRotation},
		{name: "negative coordinate", mutate: func(tb *Table) { tb.X = -20 }, wantErr: ErrCoordsNotAligned},
		{name: "unaligned x", mutate: func(tb *Table) { tb.X = 107 }, wantErr: ErrCoordsNotAligned},
		{name: "unaligned y", mutate: func(tb *Table) { tb.Y = 33 }, wantErr: ErrCoordsNotAligned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := valid()
			tt.mutate(table)

			err := table.Validate(DefaultGridSize)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTable_Footprint(t *testing.T) {
	width, height := 160.0, 80.0

	tests := []struct {
		name       string
		table      *Table
		wantWidth  float64
		wantHeight float64
	}{
		{
			name:       "square uses default footprint",
			table:      &Table{Shape: ShapeSquare, Width: &width, Height: &height},
			wantWidth:  DefaultFootprint,
			wantHeight: DefaultFootprint,
		},
		{
			name:       "round uses default footprint",
			table:      &Table{Shape: ShapeRound},
			wantWidth:  DefaultFootprint,
			wantHeight: DefaultFootprint,
		},
		{
			name:       "rectangle uses explicit dimensions",
			table:      &Table{Shape: ShapeRectangle, Width: &width, Height: &height},
			wantWidth:  160,
			wantHeight: 80,
		},
		{
			name:       "rectangle without dimensions falls back",
			table:      &Table{Shape: ShapeRectangle},
			wantWidth:  DefaultFootprint,
			wantHeight: DefaultFootprint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotWidth, gotHeight := tt.table.Footprint()
			assert.Equal(t, tt.wantWidth, gotWidth)
			assert.Equal(t, tt.wantHeight, gotHeight)
		})
	}
}

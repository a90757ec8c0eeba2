package domain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// TableShape represents the geometric shape of a table on the floor plan
type TableShape string

const (
	ShapeSquare    TableShape = "square"
	ShapeRound     TableShape = "round"
	ShapeRectangle TableShape = "rectangle"
)

// Допустимые углы поворота стола
var validRotations = map[int]struct{}{0: {}, 90: {}, 180: {}, 270: {}}

var (
	// ErrInvalidShape возвращается при неизвестной форме стола
	ErrInvalidShape = errors.New("domain: invalid table shape")

	// ErrInvalidCapacity возвращается при неположительной вместимости
	ErrInvalidCapacity = errors.New("domain: table capacity must be positive")

	// ErrInvalidRotation возвращается при недопустимом угле поворота
	ErrInvalidRotation = errors.New("domain: rotation must be one of 0, 90, 180, 270")

	// ErrCoordsNotAligned возвращается, когда координаты не выровнены по сетке
	ErrCoordsNotAligned = errors.New("domain: coordinates must be aligned to the grid")
)

// Table represents a restaurant table: a capacity unit with a spatial
// placement on the floor-plan canvas.
type Table struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	TableNumber  string
	Capacity     int
	Shape        TableShape
	X            float64
	Y            float64
	Rotation     int // degrees: 0, 90, 180, 270
	Width        *float64 // rectangle only
	Height       *float64 // rectangle only
	ZoneName     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParseTableShape validates and converts a raw shape string.
func ParseTableShape(s string) (TableShape, error) {
	switch TableShape(s) {
	case ShapeSquare, ShapeRound, ShapeRectangle:
		return TableShape(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidShape, s)
	}
}

// Validate checks the table invariants: positive capacity, known shape,
// valid rotation and grid-aligned coordinates.
func (t *Table) Validate(gridSize float64) error {
	if t.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if _, err := ParseTableShape(string(t.Shape)); err != nil {
		return err
	}
	if !IsValidRotation(t.Rotation) {
		return fmt.Errorf("%w: %d", ErrInvalidRotation, t.Rotation)
	}
	if t.X < 0 || t.Y < 0 {
		return ErrCoordsNotAligned
	}
	if !isAligned(t.X, gridSize) || !isAligned(t.Y, gridSize) {
		return ErrCoordsNotAligned
	}
	return nil
}

// Footprint returns the width and height the table occupies on the canvas.
// Square and round tables use the fixed default size; rectangles use their
// explicit dimensions, falling back to the default when unset.
func (t *Table) Footprint() (width, height float64) {
	if t.Shape != ShapeRectangle {
		return DefaultFootprint, DefaultFootprint
	}
	width, height = DefaultFootprint, DefaultFootprint
	if t.Width != nil {
		width = *t.Width
	}
	if t.Height != nil {
		height = *t.Height
	}
	return width, height
}

// IsValidRotation reports whether the angle is one of the supported
// 90-degree steps.
func IsValidRotation(rotation int) bool {
	_, ok := validRotations[rotation]
	return ok
}

// NextRotation returns the rotation advanced by 90 degrees, cycling
// 0 -> 90 -> 180 -> 270 -> 0.
func NextRotation(rotation int) int {
	return (rotation + 90) % 360
}

// SnapToGrid rounds a coordinate to the nearest multiple of gridSize.
// Ties round away from zero, so |snap(v)-v| <= gridSize/2 always holds.
func SnapToGrid(value, gridSize float64) float64 {
	if gridSize <= 0 {
		return value
	}
	return math.Round(value/gridSize) * gridSize
}

func isAligned(value, gridSize float64) bool {
	if gridSize <= 0 {
		return true
	}
	return math.Mod(value, gridSize) == 0
}

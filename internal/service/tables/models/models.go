package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

// CreateTableRequest данные нового стола
type CreateTableRequest struct {
	RestaurantID uuid.UUID
	TableNumber  string
	Capacity     int
	Shape        string
	X            float64
	Y            float64
	Width        *float64
	Height       *float64
	ZoneName     string
}

// UpdateTableRequest частичное изменение стола: nil-поля не трогаются
type UpdateTableRequest struct {
	TableNumber *string
	Capacity    *int
	Shape       *string
	X           *float64
	Y           *float64
	Rotation    *int
	Width       *float64
	Height      *float64
	ZoneName    *string
}

// ApplyTo накладывает изменения на существующий стол, привязывая
// координаты к сетке
func (u UpdateTableRequest) ApplyTo(table *domain.Table, gridSize float64) error {
	if u.TableNumber != nil {
		table.TableNumber = *u.TableNumber
	}
	if u.Capacity != nil {
		table.Capacity = *u.Capacity
	}
	if u.Shape != nil {
		shape, err := domain.ParseTableShape(*u.Shape)
		if err != nil {
			return err
		}
		table.Shape = shape
	}
	if u.X != nil {
		table.X = domain.SnapToGrid(*u.X, gridSize)
	}
	if u.Y != nil {
		table.Y = domain.SnapToGrid(*u.Y, gridSize)
	}
	if u.Rotation != nil {
		table.Rotation = *u.Rotation
	}
	if u.Width != nil {
		table.Width = u.Width
	}
	if u.Height != nil {
		table.Height = u.Height
	}
	if u.ZoneName != nil {
		table.ZoneName = *u.ZoneName
	}
	return nil
}

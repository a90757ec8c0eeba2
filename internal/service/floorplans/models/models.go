package models

import "github.com/google/uuid"

// TableGeometry новая геометрия одного стола при сохранении плана зала
type TableGeometry struct {
	ID       uuid.UUID
	X        float64
	Y        float64
	Rotation *int
	Width    *float64
	Height   *float64
}

// SaveRequest запрос на сохранение плана зала: геометрия столов
// и фоновое изображение канваса
type SaveRequest struct {
	Tables          []TableGeometry
	BackgroundImage *string
}

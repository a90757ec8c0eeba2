package update_table

import "github.com/m04kA/DS-ReservationService/internal/service/tables/models"

// UpdateTableRequest HTTP request model: отсутствующие поля не трогаются
type UpdateTableRequest struct {
	TableNumber *string  `json:"tableNumber,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	Shape       *string  `json:"shape,omitempty"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Rotation    *int     `json:"rotation,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	ZoneName    *string  `json:"zoneName,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTableRequest) ToServiceRequest() models.UpdateTableRequest {
	return models.UpdateTableRequest{
		TableNumber: r.TableNumber,
		Capacity:    r.Capacity,
		Shape:       r.Shape,
		X:           r.X,
		Y:           r.Y,
		Rotation:    r.Rotation,
		Width:       r.Width,
		Height:      r.Height,
		ZoneName:    r.ZoneName,
	}
}

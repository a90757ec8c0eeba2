package create_table

import (
	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/service/tables/models"
)

// CreateTableRequest HTTP request model
type CreateTableRequest struct {
	TableNumber string   `json:"tableNumber"`
	Capacity    int      `json:"capacity"`
	Shape       string   `json:"shape"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	ZoneName    string   `json:"zoneName,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTableRequest) ToServiceRequest(restaurantID uuid.UUID) models.CreateTableRequest {
	return models.CreateTableRequest{
		RestaurantID: restaurantID,
		TableNumber:  r.TableNumber,
		Capacity:     r.Capacity,
		Shape:        r.Shape,
		X:            r.X,
		Y:            r.Y,
		Width:        r.Width,
		Height:       r.Height,
		ZoneName:     r.ZoneName,
	}
}

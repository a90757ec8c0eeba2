package save_floor_plan

import (
	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/internal/service/floorplans/models"
)

// TableGeometryRequest новая геометрия одного стола
type TableGeometryRequest struct {
	ID       uuid.UUID `json:"id"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Rotation *int      `json:"rotation,omitempty"`
	Width    *float64  `json:"width,omitempty"`
	Height   *float64  `json:"height,omitempty"`
}

// SaveFloorPlanRequest HTTP request model
type SaveFloorPlanRequest struct {
	Tables          []TableGeometryRequest `json:"tables"`
	BackgroundImage *string                `json:"backgroundImage,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SaveFloorPlanRequest) ToServiceRequest() models.SaveRequest {
	req := models.SaveRequest{
		Tables:          make([]models.TableGeometry, len(r.Tables)),
		BackgroundImage: r.BackgroundImage,
	}

	for i, t := range r.Tables {
		req.Tables[i] = models.TableGeometry{
			ID:       t.ID,
			X:        t.X,
			Y:        t.Y,
			Rotation: t.Rotation,
			Width:    t.Width,
			Height:   t.Height,
		}
	}

	return req
}

// FloorPlanResponse HTTP response model
type FloorPlanResponse struct {
	RestaurantID uuid.UUID                      `json:"restaurantId"`
	Meta         handlers.FloorPlanMetaResponse `json:"meta"`
	Tables       []*handlers.TableResponse      `json:"tables"`
}

// FromSnapshot конвертирует снимок плана зала в HTTP response
func FromSnapshot(snapshot *domain.FloorPlanSnapshot) *FloorPlanResponse {
	return &FloorPlanResponse{
		RestaurantID: snapshot.RestaurantID,
		Meta:         handlers.FromDomainFloorPlanMeta(snapshot.Meta),
		Tables:       handlers.FromDomainTables(snapshot.Tables),
	}
}

package get_floor_plan

import (
	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	"github.com/m04kA/DS-ReservationService/internal/domain"
)

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

package get_live_occupancy

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	"github.com/m04kA/DS-ReservationService/internal/service/reservations/models"
)

// OccupiedTableResponse стол с бронированием, занимающим его в момент запроса
type OccupiedTableResponse struct {
	Table       *handlers.TableResponse       `json:"table"`
	Reservation *handlers.ReservationResponse `json:"reservation"`
}

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	RestaurantID   uuid.UUID                `json:"restaurantId"`
	At             string                   `json:"at"`
	Tables         []*handlers.TableResponse `json:"tables"`
	OccupiedTables []OccupiedTableResponse  `json:"occupiedTables"`
}

// FromServiceOccupancy конвертирует снимок занятости в HTTP response
func FromServiceOccupancy(occ *models.Occupancy) *OccupancyResponse {
	resp := &OccupancyResponse{
		RestaurantID:   occ.RestaurantID,
		At:             occ.At.Format(time.RFC3339),
		Tables:         handlers.FromDomainTables(occ.Tables),
		OccupiedTables: make([]OccupiedTableResponse, len(occ.OccupiedTables)),
	}

	for i, item := range occ.OccupiedTables {
		resp.OccupiedTables[i] = OccupiedTableResponse{
			Table:       handlers.FromDomainTable(item.Table),
			Reservation: handlers.FromDomainReservation(item.Reservation),
		}
	}

	return resp
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/m04kA/DS-ReservationService/pkg/types"
)

// Restaurant holds the per-restaurant configuration the reservation engine
// consumes: the base turnover, service hours and floor-plan metadata.
// Profile fields (cuisine, address, images) live outside this service.
type Restaurant struct {
	ID                  uuid.UUID
	Name                string
	TurnDurationMinutes int
	OpeningTime         types.TimeString
	ClosingTime         types.TimeString
	FloorPlan           FloorPlanMeta

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BaseTurnover returns the configured turn duration, falling back to the
// global default when unset.
func (r *Restaurant) BaseTurnover() int {
	if r.TurnDurationMinutes <= 0 {
		return DefaultBaseTurnoverMinutes
	}
	return r.TurnDurationMinutes
}

// Hours returns the service hours, falling back to the global defaults
// when not configured.
func (r *Restaurant) Hours() (opening, closing types.TimeString) {
	opening, closing = r.OpeningTime, r.ClosingTime
	if opening.IsZero() {
		opening = types.TimeString(DefaultOpeningTime)
	}
	if closing.IsZero() {
		closing = types.TimeString(DefaultClosingTime)
	}
	return opening, closing
}

// FloorPlanMeta canvas-level floor plan metadata persisted on the restaurant
type FloorPlanMeta struct {
	Version         string   `json:"version"`
	CanvasWidth     float64  `json:"canvasWidth"`
	CanvasHeight    float64  `json:"canvasHeight"`
	GridSize        float64  `json:"gridSize"`
	BackgroundImage *string  `json:"backgroundImage,omitempty"`
	Zones           []string `json:"zones"`
}

// DefaultFloorPlanMeta returns the canvas metadata used when a restaurant
// has no saved floor plan yet.
func DefaultFloorPlanMeta() FloorPlanMeta {
	return FloorPlanMeta{
		Version:      FloorPlanVersion,
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		GridSize:     DefaultGridSize,
		Zones:        []string{},
	}
}

// FloorPlanSnapshot is the persisted form of a floor-plan editor session:
// canvas metadata plus the restaurant's current table set.
type FloorPlanSnapshot struct {
	RestaurantID uuid.UUID
	Meta         FloorPlanMeta
	Tables       []*Table
}

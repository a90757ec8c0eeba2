package save_floor_plan

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/internal/service/floorplans/models"
)

type FloorPlanService interface {
	Save(ctx context.Context, restaurantID uuid.UUID, req models.SaveRequest) (*domain.FloorPlanSnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

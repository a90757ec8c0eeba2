package get_floor_plan

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

type FloorPlanService interface {
	Get(ctx context.Context, restaurantID uuid.UUID) (*domain.FloorPlanSnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_live_occupancy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	LiveOccupancy(ctx context.Context, restaurantID uuid.UUID, at time.Time) (*models.Occupancy, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

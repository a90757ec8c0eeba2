package floorplans

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	UpdateFloorPlanMeta(ctx context.Context, id uuid.UUID, meta domain.FloorPlanMeta) error
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Table, error)
	UpdateGeometry(ctx context.Context, restaurantID uuid.UUID, table *domain.Table) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

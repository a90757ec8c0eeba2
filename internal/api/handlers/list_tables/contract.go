package list_tables

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

type TableService interface {
	List(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetByRestaurantWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

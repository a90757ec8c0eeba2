package get_restaurant_reservations

import (
	"context"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetRestaurantReservations(ctx context.Context, req models.RestaurantReservationsRequest) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_user_reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

type ReservationService interface {
	GetUserReservations(ctx context.Context, userID uuid.UUID, status *string) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

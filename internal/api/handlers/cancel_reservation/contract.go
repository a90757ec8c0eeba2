package cancel_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

type ReservationService interface {
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

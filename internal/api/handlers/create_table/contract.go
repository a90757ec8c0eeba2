package create_table

import (
	"context"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/internal/service/tables/models"
)

type TableService interface {
	Create(ctx context.Context, req models.CreateTableRequest) (*domain.Table, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

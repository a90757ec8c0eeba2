package get_available_tables

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

// Request модель запроса свободных столов на конкретное время
type Request struct {
	RestaurantID uuid.UUID // ID ресторана
	StartTime    time.Time // Запрошенное время начала
	PartySize    int       // Количество гостей
}

// Response модель ответа со свободными столами
type Response struct {
	RestaurantID uuid.UUID       // ID ресторана
	StartTime    time.Time       // Запрошенное время начала
	PartySize    int             // Количество гостей
	Tables       []*domain.Table // Подходящие свободные столы в стабильном порядке
}

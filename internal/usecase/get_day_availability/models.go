package get_day_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/pkg/types"
)

// Request модель запроса доступности на день
type Request struct {
	RestaurantID uuid.UUID // ID ресторана
	Date         time.Time // Дата (время игнорируется)
	PartySize    int       // Количество гостей
}

// Slot один слот дня
type Slot struct {
	Time            types.TimeString // Время начала слота
	Available       bool             // Есть ли свободные столы
	TablesAvailable int              // Количество подходящих свободных столов
}

// Response модель ответа с доступностью на день
type Response struct {
	RestaurantID  uuid.UUID         // ID ресторана
	Date          time.Time         // Дата
	PartySize     int               // Количество гостей
	Slots         []Slot            // Слоты дня в хронологическом порядке
	NextAvailable *types.TimeString // Первый доступный слот, nil если его нет
}

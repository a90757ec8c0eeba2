package update_reservation

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на изменение бронирования: nil-поля не трогаются
type Request struct {
	ReservationID uuid.UUID

	TableID    *uuid.UUID // Перенос на другой стол
	GuestCount *int       // Новое количество гостей
	StartTime  *time.Time // Новое время начала
	GuestName  *string
	GuestPhone *string
	GuestNotes *string
}

// Response модель ответа с измененным бронированием
type Response struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	TableID      *uuid.UUID
	UserID       *uuid.UUID
	GuestCount   int
	StartTime    time.Time
	EndTime      time.Time // Пересчитывается при смене времени или количества гостей
	Status       string

	GuestName  *string
	GuestPhone *string
	GuestNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

package create_reservation

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание бронирования
type Request struct {
	RestaurantID uuid.UUID  // ID ресторана
	TableID      *uuid.UUID // ID стола (опционально, без стола бронирование не блокирует зал)
	UserID       *uuid.UUID // ID пользователя (nil для анонимных гостей)
	GuestCount   int        // Количество гостей
	StartTime    time.Time  // Дата и время начала
	GuestName    *string    // Имя гостя (опционально)
	GuestPhone   *string    // Телефон гостя (опционально)
	GuestNotes   *string    // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           uuid.UUID  // ID созданного бронирования
	RestaurantID uuid.UUID  // ID ресторана
	TableID      *uuid.UUID // ID стола
	UserID       *uuid.UUID // ID пользователя
	GuestCount   int        // Количество гостей
	StartTime    time.Time  // Время начала
	EndTime      time.Time  // Расчетное время окончания
	Status       string     // Статус бронирования

	GuestName  *string // Имя гостя
	GuestPhone *string // Телефон гостя
	GuestNotes *string // Пожелания гостя

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

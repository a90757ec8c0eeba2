package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string
	// Force разрешает переход в обход таблицы допустимых переходов.
	// Используется администраторами для исправления ошибочных статусов.
	Force bool
}

// RestaurantReservationsRequest параметры выборки бронирований ресторана
type RestaurantReservationsRequest struct {
	RestaurantID     uuid.UUID
	Day              *time.Time
	Status           *string
	IncludeCancelled bool
}

// ToFilter преобразует запрос в доменный фильтр
func (r RestaurantReservationsRequest) ToFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		RestaurantID:     r.RestaurantID,
		Day:              r.Day,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := domain.ParseReservationStatus(*r.Status)
		if err != nil {
			return domain.ReservationsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// OccupiedTable стол, занятый бронированием в конкретный момент времени
type OccupiedTable struct {
	Table       *domain.Table
	Reservation *domain.Reservation
}

// Occupancy снимок занятости зала в конкретный момент времени
type Occupancy struct {
	RestaurantID   uuid.UUID
	At             time.Time
	Tables         []*domain.Table
	OccupiedTables []OccupiedTable
}

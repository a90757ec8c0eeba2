package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusSeated    ReservationStatus = "seated"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no_show"
)

var (
	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("domain: invalid reservation status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrInvalidPartySize возвращается при неположительном количестве гостей
	ErrInvalidPartySize = errors.New("domain: party size must be positive")

	// ErrInvalidTimeRange возвращается, когда время окончания не позже времени начала
	ErrInvalidTimeRange = errors.New("domain: end time must be after start time")
)

// allowedTransitions задает граф переходов статусов:
// pending -> confirmed -> seated -> completed, отмена и no_show
// по пути вперед. Терминальные статусы переходов не имеют.
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusSeated, StatusCancelled, StatusNoShow},
	StatusSeated:    {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// Reservation represents a table booking for a party at a restaurant.
// EndTime is derived at creation from the party size and the restaurant's
// base turnover, and is recomputed whenever StartTime or GuestCount change.
type Reservation struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	TableID      *uuid.UUID // nil until a table is assigned
	UserID       *uuid.UUID // nil for anonymous bookings
	GuestCount   int
	StartTime    time.Time
	EndTime      time.Time
	Status       ReservationStatus

	GuestName  *string
	GuestPhone *string
	GuestNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParseReservationStatus validates and converts a raw status string.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusSeated, StatusCompleted, StatusCancelled, StatusNoShow:
		return ReservationStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// IsTerminal reports whether the status permits no further transitions.
func (s ReservationStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransitionTo reports whether the state machine allows moving from s
// to the target status.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TryTransition validates a transition and returns the new status.
// Disallowed moves fail with ErrInvalidTransition.
func (s ReservationStatus) TryTransition(target ReservationStatus) (ReservationStatus, error) {
	if !s.CanTransitionTo(target) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}

// Validate checks the reservation invariants.
func (r *Reservation) Validate() error {
	if r.GuestCount <= 0 {
		return ErrInvalidPartySize
	}
	if !r.EndTime.After(r.StartTime) {
		return ErrInvalidTimeRange
	}
	if _, err := ParseReservationStatus(string(r.Status)); err != nil {
		return err
	}
	return nil
}

// Blocks reports whether the reservation blocks its table for new bookings.
// Only cancelled reservations never block; a no_show still holds its slot
// until staff explicitly cancels it.
func (r *Reservation) Blocks() bool {
	return r.Status != StatusCancelled
}

// OccupiesAt reports whether the table is physically occupied by this
// reservation at the given moment, for the live floor-plan overlay.
// Cancelled and no_show reservations never occupy a table.
func (r *Reservation) OccupiesAt(at time.Time) bool {
	if r.Status == StatusCancelled || r.Status == StatusNoShow {
		return false
	}
	return !at.Before(r.StartTime) && at.Before(r.EndTime)
}

// ReservationsFilter фильтр для выборки бронирований ресторана
type ReservationsFilter struct {
	RestaurantID     uuid.UUID          // Обязательный параметр
	TableID          *uuid.UUID         // Фильтр по столу (опционально)
	Day              *time.Time         // Бронирования конкретного дня (опционально)
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *ReservationStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные бронирования
}

package update_reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/pkg/types"
)

// Редактирование разрешено только до посадки гостей
var editableStatuses = map[domain.ReservationStatus]struct{}{
	domain.StatusPending:   {},
	domain.StatusConfirmed: {},
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID == uuid.Nil {
		return fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	if req.GuestCount != nil && (*req.GuestCount < domain.MinPartySize || *req.GuestCount > domain.MaxPartySize) {
		return fmt.Errorf("%w: guestCount must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.StartTime != nil && req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime must not be zero", ErrInvalidInput)
	}

	if req.GuestNotes != nil && len(*req.GuestNotes) > domain.MaxGuestNotesLength {
		return fmt.Errorf("%w: guestNotes must be at most %d characters",
			ErrInvalidInput, domain.MaxGuestNotesLength)
	}

	return nil
}

// validateEditable проверяет, что статус бронирования допускает редактирование
func validateEditable(status domain.ReservationStatus) error {
	if _, ok := editableStatuses[status]; !ok {
		return fmt.Errorf("%w: %s", ErrNotEditable, status)
	}
	return nil
}

// validateOpeningHours проверяет, что время начала попадает в часы работы
// ресторана: [opening, closing)
func validateOpeningHours(start time.Time, opening, closing types.TimeString) error {
	startTime := types.NewTimeString(start)

	if startTime.IsBefore(opening) || !startTime.IsBefore(closing) {
		return fmt.Errorf("%w: %s is outside %s-%s", ErrOutsideOpeningHours, startTime, opening, closing)
	}

	return nil
}

package create_reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID == uuid.Nil {
		return fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}

	if req.GuestCount < domain.MinPartySize || req.GuestCount > domain.MaxPartySize {
		return fmt.Errorf("%w: guestCount must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.GuestNotes != nil && len(*req.GuestNotes) > domain.MaxGuestNotesLength {
		return fmt.Errorf("%w: guestNotes must be at most %d characters",
			ErrInvalidInput, domain.MaxGuestNotesLength)
	}

	return nil
}

// validateStartTime проверяет, что время начала не в прошлом
func validateStartTime(start, now time.Time) error {
	if start.Before(now) {
		return ErrInvalidDate
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

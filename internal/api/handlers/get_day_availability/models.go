package get_day_availability

import (
	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	getDayAvailability "github.com/m04kA/DS-ReservationService/internal/usecase/get_day_availability"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	Time            string `json:"time"`
	Available       bool   `json:"available"`
	TablesAvailable int    `json:"tablesAvailable"`
}

// DayAvailabilityResponse HTTP response model
type DayAvailabilityResponse struct {
	RestaurantID  uuid.UUID      `json:"restaurantId"`
	Date          string         `json:"date"`
	PartySize     int            `json:"partySize"`
	Slots         []SlotResponse `json:"slots"`
	NextAvailable *string        `json:"nextAvailable,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayAvailability.Response) *DayAvailabilityResponse {
	result := &DayAvailabilityResponse{
		RestaurantID: resp.RestaurantID,
		Date:         resp.Date.Format(domain.DateFormat),
		PartySize:    resp.PartySize,
		Slots:        make([]SlotResponse, len(resp.Slots)),
	}

	for i, slot := range resp.Slots {
		result.Slots[i] = SlotResponse{
			Time:            slot.Time.String(),
			Available:       slot.Available,
			TablesAvailable: slot.TablesAvailable,
		}
	}

	if resp.NextAvailable != nil {
		next := resp.NextAvailable.String()
		result.NextAvailable = &next
	}

	return result
}

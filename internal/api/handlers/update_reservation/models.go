package update_reservation

import (
	"time"

	"github.com/google/uuid"

	updateReservation "github.com/m04kA/DS-ReservationService/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model: отсутствующие поля не трогаются
type UpdateReservationRequest struct {
	TableID    *uuid.UUID `json:"tableId,omitempty"`
	GuestCount *int       `json:"guestCount,omitempty"`
	StartTime  *string    `json:"startTime,omitempty"` // RFC3339
	GuestName  *string    `json:"guestName,omitempty"`
	GuestPhone *string    `json:"guestPhone,omitempty"`
	GuestNotes *string    `json:"guestNotes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID uuid.UUID) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ReservationID: reservationID,
		TableID:       r.TableID,
		GuestCount:    r.GuestCount,
		GuestName:     r.GuestName,
		GuestPhone:    r.GuestPhone,
		GuestNotes:    r.GuestNotes,
	}

	if r.StartTime != nil {
		startTime, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           uuid.UUID  `json:"id"`
	RestaurantID uuid.UUID  `json:"restaurantId"`
	TableID      *uuid.UUID `json:"tableId,omitempty"`
	UserID       *uuid.UUID `json:"userId,omitempty"`
	GuestCount   int        `json:"guestCount"`
	StartTime    string     `json:"startTime"`
	EndTime      string     `json:"endTime"`
	Status       string     `json:"status"`
	GuestName    *string    `json:"guestName,omitempty"`
	GuestPhone   *string    `json:"guestPhone,omitempty"`
	GuestNotes   *string    `json:"guestNotes,omitempty"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		RestaurantID: resp.RestaurantID,
		TableID:      resp.TableID,
		UserID:       resp.UserID,
		GuestCount:   resp.GuestCount,
		StartTime:    resp.StartTime.Format(time.RFC3339),
		EndTime:      resp.EndTime.Format(time.RFC3339),
		Status:       resp.Status,
		GuestName:    resp.GuestName,
		GuestPhone:   resp.GuestPhone,
		GuestNotes:   resp.GuestNotes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

package create_reservation

import (
	"time"

	"github.com/google/uuid"

	createReservation "github.com/m04kA/DS-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RestaurantID uuid.UUID  `json:"restaurantId"`
	TableID      *uuid.UUID `json:"tableId,omitempty"`
	GuestCount   int        `json:"guestCount"`
	StartTime    string     `json:"startTime"` // RFC3339: "2026-09-01T19:00:00Z"
	GuestName    *string    `json:"guestName,omitempty"`
	GuestPhone   *string    `json:"guestPhone,omitempty"`
	GuestNotes   *string    `json:"guestNotes,omitempty"`
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
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID uuid.UUID) (*createReservation.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		RestaurantID: r.RestaurantID,
		TableID:      r.TableID,
		UserID:       &userID,
		GuestCount:   r.GuestCount,
		StartTime:    startTime,
		GuestName:    r.GuestName,
		GuestPhone:   r.GuestPhone,
		GuestNotes:   r.GuestNotes,
	}, nil
}

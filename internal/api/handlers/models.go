package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

// ReservationResponse HTTP модель бронирования, общая для всех handlers
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

// FromDomainReservation конвертирует доменное бронирование в HTTP модель
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		TableID:      r.TableID,
		UserID:       r.UserID,
		GuestCount:   r.GuestCount,
		StartTime:    r.StartTime.Format(time.RFC3339),
		EndTime:      r.EndTime.Format(time.RFC3339),
		Status:       string(r.Status),
		GuestName:    r.GuestName,
		GuestPhone:   r.GuestPhone,
		GuestNotes:   r.GuestNotes,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservations конвертирует список бронирований
func FromDomainReservations(items []*domain.Reservation) []*ReservationResponse {
	result := make([]*ReservationResponse, len(items))
	for i, item := range items {
		result[i] = FromDomainReservation(item)
	}
	return result
}

// TableResponse HTTP модель стола, общая для всех handlers
type TableResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	TableNumber  string    `json:"tableNumber"`
	Capacity     int       `json:"capacity"`
	Shape        string    `json:"shape"`
	X            float64   `json:"x"`
	Y            float64   `json:"y"`
	Rotation     int       `json:"rotation"`
	Width        *float64  `json:"width,omitempty"`
	Height       *float64  `json:"height,omitempty"`
	ZoneName     string    `json:"zoneName,omitempty"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

// FromDomainTable конвертирует доменный стол в HTTP модель
func FromDomainTable(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:           t.ID,
		RestaurantID: t.RestaurantID,
		TableNumber:  t.TableNumber,
		Capacity:     t.Capacity,
		Shape:        string(t.Shape),
		X:            t.X,
		Y:            t.Y,
		Rotation:     t.Rotation,
		Width:        t.Width,
		Height:       t.Height,
		ZoneName:     t.ZoneName,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainTables конвертирует список столов
func FromDomainTables(items []*domain.Table) []*TableResponse {
	result := make([]*TableResponse, len(items))
	for i, item := range items {
		result[i] = FromDomainTable(item)
	}
	return result
}

// FloorPlanMetaResponse HTTP модель метаданных плана зала
type FloorPlanMetaResponse struct {
	Version         string   `json:"version"`
	CanvasWidth     float64  `json:"canvasWidth"`
	CanvasHeight    float64  `json:"canvasHeight"`
	GridSize        float64  `json:"gridSize"`
	BackgroundImage *string  `json:"backgroundImage,omitempty"`
	Zones           []string `json:"zones"`
}

// FromDomainFloorPlanMeta конвертирует метаданные плана зала
func FromDomainFloorPlanMeta(m domain.FloorPlanMeta) FloorPlanMetaResponse {
	return FloorPlanMetaResponse{
		Version:         m.Version,
		CanvasWidth:     m.CanvasWidth,
		CanvasHeight:    m.CanvasHeight,
		GridSize:        m.GridSize,
		BackgroundImage: m.BackgroundImage,
		Zones:           m.Zones,
	}
}

package get_restaurant_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/internal/service/reservations"
	"github.com/m04kA/DS-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus       = "неизвестный статус бронирования"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/reservations?date=2026-09-01&status=confirmed&includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/reservations - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	req := models.RestaurantReservationsRequest{
		RestaurantID:     restaurantID,
		IncludeCancelled: r.URL.Query().Get("includeCancelled") == "true",
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		day, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /restaurants/{id}/reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Day = &day
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		req.Status = &raw
	}

	items, err := h.service.GetRestaurantReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("GET /restaurants/{id}/reservations - Invalid status filter: restaurant_id=%s", restaurantID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /restaurants/{id}/reservations - Failed to list reservations: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/reservations - Retrieved %d reservations: restaurant_id=%s",
		len(items), restaurantID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainReservations(items))
}

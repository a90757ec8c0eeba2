package get_live_occupancy

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidAt           = "некорректный формат времени, ожидается RFC3339"
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

// Handle GET /api/v1/restaurants/{restaurantId}/occupancy?at=2026-09-01T19:30:00Z
// Без параметра at возвращает занятость на текущий момент.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/occupancy - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	at := time.Now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		at, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /restaurants/{id}/occupancy - Invalid at parameter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAt)
			return
		}
	}

	occupancy, err := h.service.LiveOccupancy(r.Context(), restaurantID, at)
	if err != nil {
		h.logger.Error("GET /restaurants/{id}/occupancy - Failed to get occupancy: restaurant_id=%s, error=%v",
			restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /restaurants/{id}/occupancy - Occupancy retrieved: restaurant_id=%s, occupied=%d/%d",
		restaurantID, len(occupancy.OccupiedTables), len(occupancy.Tables))
	handlers.RespondJSON(w, http.StatusOK, FromServiceOccupancy(occupancy))
}

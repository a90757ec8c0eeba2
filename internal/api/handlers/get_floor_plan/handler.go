package get_floor_plan

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	"github.com/m04kA/DS-ReservationService/internal/service/floorplans"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	service FloorPlanService
	logger  Logger
}

func NewHandler(service FloorPlanService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/floor-plan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/floor-plan - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	snapshot, err := h.service.Get(r.Context(), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, floorplans.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/floor-plan - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		default:
			h.logger.Error("GET /restaurants/{id}/floor-plan - Failed to get floor plan: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/floor-plan - Floor plan retrieved: restaurant_id=%s, tables=%d",
		restaurantID, len(snapshot.Tables))
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snapshot))
}

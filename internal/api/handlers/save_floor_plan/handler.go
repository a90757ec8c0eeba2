package save_floor_plan

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
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgRestaurantNotFound  = "ресторан не найден"
	msgInvalidGeometry     = "некорректная геометрия стола"
	msgPartialSave         = "план зала сохранен частично"
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

// Handle PUT /api/v1/restaurants/{restaurantId}/floor-plan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id}/floor-plan - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req SaveFloorPlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id}/floor-plan - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snapshot, err := h.service.Save(r.Context(), restaurantID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, floorplans.ErrRestaurantNotFound):
			h.logger.Warn("PUT /restaurants/{id}/floor-plan - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, floorplans.ErrInvalidGeometry):
			h.logger.Warn("PUT /restaurants/{id}/floor-plan - Invalid geometry: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidGeometry)

		case errors.Is(err, floorplans.ErrPartialSave):
			h.logger.Error("PUT /restaurants/{id}/floor-plan - Partial save: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondError(w, http.StatusMultiStatus, msgPartialSave)

		default:
			h.logger.Error("PUT /restaurants/{id}/floor-plan - Failed to save floor plan: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /restaurants/{id}/floor-plan - Floor plan saved: restaurant_id=%s, tables=%d",
		restaurantID, len(req.Tables))
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snapshot))
}

package list_tables

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
)

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/tables - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	items, err := h.service.List(r.Context(), restaurantID)
	if err != nil {
		h.logger.Error("GET /restaurants/{id}/tables - Failed to list tables: restaurant_id=%s, error=%v",
			restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /restaurants/{id}/tables - Retrieved %d tables: restaurant_id=%s", len(items), restaurantID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainTables(items))
}

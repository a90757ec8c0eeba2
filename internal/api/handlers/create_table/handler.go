package create_table

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	"github.com/m04kA/DS-ReservationService/internal/service/tables"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgRestaurantNotFound  = "ресторан не найден"
	msgInvalidTableData    = "некорректные данные стола"
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

// Handle POST /api/v1/restaurants/{restaurantId}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.Create(r.Context(), req.ToServiceRequest(restaurantID))
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrRestaurantNotFound):
			h.logger.Warn("POST /restaurants/{id}/tables - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("POST /restaurants/{id}/tables - Invalid table data: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidTableData)

		default:
			h.logger.Error("POST /restaurants/{id}/tables - Failed to create table: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /restaurants/{id}/tables - Table created successfully: table_id=%s, restaurant_id=%s",
		table.ID, restaurantID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainTable(table))
}

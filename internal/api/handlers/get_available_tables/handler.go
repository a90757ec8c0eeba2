package get_available_tables

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	getAvailableTables "github.com/m04kA/DS-ReservationService/internal/usecase/get_available_tables"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidStartTime    = "некорректный формат времени начала, ожидается RFC3339"
	msgInvalidPartySize    = "некорректное количество гостей"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	useCase GetAvailableTablesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/available-tables?startTime=2026-09-01T19:00:00Z&partySize=4
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-tables - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	startTime, err := time.Parse(time.RFC3339, r.URL.Query().Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-tables - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	partySize, err := strconv.Atoi(r.URL.Query().Get("partySize"))
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/available-tables - Invalid party size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTables.Request{
		RestaurantID: restaurantID,
		StartTime:    startTime,
		PartySize:    partySize,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTables.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/available-tables - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, getAvailableTables.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/available-tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /restaurants/{id}/available-tables - Failed to get tables: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/available-tables - Retrieved %d tables: restaurant_id=%s",
		len(result.Tables), restaurantID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainTables(result.Tables))
}

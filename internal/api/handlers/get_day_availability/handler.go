package get_day_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	"github.com/m04kA/DS-ReservationService/internal/domain"
	getDayAvailability "github.com/m04kA/DS-ReservationService/internal/usecase/get_day_availability"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPartySize    = "некорректное количество гостей"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	useCase GetDayAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDayAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/availability?date=2026-09-01&partySize=4
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	restaurantID, err := uuid.Parse(vars["restaurantId"])
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/availability - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	partySize, err := strconv.Atoi(r.URL.Query().Get("partySize"))
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/availability - Invalid party size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayAvailability.Request{
		RestaurantID: restaurantID,
		Date:         date,
		PartySize:    partySize,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayAvailability.ErrRestaurantNotFound):
			h.logger.Warn("GET /restaurants/{id}/availability - Restaurant not found: restaurant_id=%s", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, getDayAvailability.ErrInvalidInput):
			h.logger.Warn("GET /restaurants/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /restaurants/{id}/availability - Failed to get availability: restaurant_id=%s, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /restaurants/{id}/availability - Availability retrieved: restaurant_id=%s, slots=%d",
		restaurantID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	"github.com/m04kA/DS-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/DS-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStartTime    = "некорректный формат времени начала, ожидается RFC3339"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgRestaurantNotFound  = "ресторан не найден"
	msgTableNotFound       = "стол не найден"
	msgTableTooSmall       = "вместимость стола меньше количества гостей"
	msgTableNotAvailable   = "стол занят в выбранное время"
	msgStartTimeInPast     = "время начала в прошлом"
	msgOutsideOpeningHours = "время начала вне часов работы ресторана"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrTableNotAvailable):
			h.logger.Warn("POST /reservations - Table not available: restaurant_id=%s, start=%s",
				req.RestaurantID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgTableNotAvailable)

		case errors.Is(err, createReservation.ErrRestaurantNotFound):
			h.logger.Warn("POST /reservations - Restaurant not found: restaurant_id=%s", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: restaurant_id=%s", req.RestaurantID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createReservation.ErrTableTooSmall):
			h.logger.Warn("POST /reservations - Table too small: restaurant_id=%s, guests=%d",
				req.RestaurantID, req.GuestCount)
			handlers.RespondBadRequest(w, msgTableTooSmall)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Start time in past: restaurant_id=%s, start=%s",
				req.RestaurantID, req.StartTime)
			handlers.RespondBadRequest(w, msgStartTimeInPast)

		case errors.Is(err, createReservation.ErrOutsideOpeningHours):
			h.logger.Warn("POST /reservations - Outside opening hours: restaurant_id=%s, start=%s",
				req.RestaurantID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideOpeningHours)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: restaurant_id=%s, error=%v",
				req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, restaurant_id=%s, start=%s-%s",
		result.ID, result.RestaurantID,
		result.StartTime.Format(time.RFC3339), result.EndTime.Format(time.RFC3339))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

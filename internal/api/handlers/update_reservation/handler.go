package update_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	updateReservation "github.com/m04kA/DS-ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStartTime     = "некорректный формат времени начала, ожидается RFC3339"
	msgNotFound             = "бронирование не найдено"
	msgTableNotFound        = "стол не найден"
	msgTableTooSmall        = "вместимость стола меньше количества гостей"
	msgTableNotAvailable    = "стол занят в выбранное время"
	msgNotEditable          = "бронирование нельзя изменить в текущем статусе"
	msgOutsideOpeningHours  = "время начала вне часов работы ресторана"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := uuid.Parse(vars["reservationId"])
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrTableNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Table not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, updateReservation.ErrTableNotAvailable):
			h.logger.Warn("PATCH /reservations/{id} - Table not available: reservation_id=%s", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgTableNotAvailable)

		case errors.Is(err, updateReservation.ErrNotEditable):
			h.logger.Warn("PATCH /reservations/{id} - Not editable: reservation_id=%s", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgNotEditable)

		case errors.Is(err, updateReservation.ErrTableTooSmall):
			h.logger.Warn("PATCH /reservations/{id} - Table too small: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgTableTooSmall)

		case errors.Is(err, updateReservation.ErrOutsideOpeningHours):
			h.logger.Warn("PATCH /reservations/{id} - Outside opening hours: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgOutsideOpeningHours)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to update reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id} - Reservation updated successfully: reservation_id=%s", reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package update_table

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	"github.com/m04kA/DS-ReservationService/internal/service/tables"
)

const (
	msgInvalidTableID     = "некорректный ID стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTableNotFound      = "стол не найден"
	msgInvalidTableData   = "некорректные данные стола"
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

// Handle PATCH /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tableID, err := uuid.Parse(vars["tableId"])
	if err != nil {
		h.logger.Warn("PATCH /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	var req UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.Update(r.Context(), tableID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("PATCH /tables/{id} - Table not found: table_id=%s", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("PATCH /tables/{id} - Invalid table data: table_id=%s, error=%v", tableID, err)
			handlers.RespondBadRequest(w, msgInvalidTableData)

		default:
			h.logger.Error("PATCH /tables/{id} - Failed to update table: table_id=%s, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tables/{id} - Table updated successfully: table_id=%s", tableID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainTable(table))
}

package delete_table

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ReservationService/internal/api/handlers"
	"github.com/m04kA/DS-ReservationService/internal/service/tables"
)

const (
	msgInvalidTableID = "некорректный ID стола"
	msgTableNotFound  = "стол не найден"
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

// Handle DELETE /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tableID, err := uuid.Parse(vars["tableId"])
	if err != nil {
		h.logger.Warn("DELETE /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	if err := h.service.Delete(r.Context(), tableID); err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("DELETE /tables/{id} - Table not found: table_id=%s", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		default:
			h.logger.Error("DELETE /tables/{id} - Failed to delete table: table_id=%s, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tables/{id} - Table deleted successfully: table_id=%s", tableID)
	handlers.RespondNoContent(w)
}

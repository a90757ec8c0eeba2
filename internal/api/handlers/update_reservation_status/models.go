package update_reservation_status

import "github.com/m04kA/DS-ReservationService/internal/service/reservations/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
	// Force пропускает проверку допустимости перехода, для администраторов
	Force bool `json:"force,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() models.UpdateStatusRequest {
	return models.UpdateStatusRequest{
		Status: r.Status,
		Force:  r.Force,
	}
}

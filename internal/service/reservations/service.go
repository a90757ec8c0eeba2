package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/availability"
	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/DS-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	logger          Logger
}

// NewService создает новый сервис бронирований
func NewService(reservationRepo ReservationRepository, tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: failed to get reservation %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID: %v", ErrInternal, err)
	}

	return res, nil
}

// GetUserReservations получает бронирования пользователя, опционально по статусу
func (s *Service) GetUserReservations(ctx context.Context, userID uuid.UUID, status *string) ([]*domain.Reservation, error) {
	var statusFilter *domain.ReservationStatus
	if status != nil {
		parsed, err := domain.ParseReservationStatus(*status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		statusFilter = &parsed
	}

	items, err := s.reservationRepo.GetByUserID(ctx, userID, statusFilter)
	if err != nil {
		s.logger.Error("GetUserReservations: failed to list reservations for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserReservations: %v", ErrInternal, err)
	}

	return items, nil
}

// GetRestaurantReservations получает бронирования ресторана по фильтру
func (s *Service) GetRestaurantReservations(ctx context.Context, req models.RestaurantReservationsRequest) ([]*domain.Reservation, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	items, err := s.reservationRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRestaurantReservations: failed to list reservations for restaurant %s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantReservations: %v", ErrInternal, err)
	}

	return items, nil
}

// UpdateStatus переводит бронирование в новый статус.
// Переход проверяется по таблице допустимых переходов, если не задан Force.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req models.UpdateStatusRequest) (*domain.Reservation, error) {
	newStatus, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: failed to get reservation %s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus: %v", ErrInternal, err)
	}

	if req.Force {
		s.logger.Warn("UpdateStatus: forced transition %s -> %s for reservation %s", res.Status, newStatus, id)
	} else {
		if _, err := res.Status.TryTransition(newStatus); err != nil {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, newStatus)
		}
	}
	res.Status = newStatus

	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: failed to update status for reservation %s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: reservation %s moved to status %s", id, newStatus)

	return res, nil
}

// Cancel отменяет бронирование. Отмена разрешена только из статусов,
// для которых допустим переход в cancelled.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: failed to get reservation %s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel: %v", ErrInternal, err)
	}

	if _, err := res.Status.TryTransition(domain.StatusCancelled); err != nil {
		return nil, fmt.Errorf("%w: status %s", ErrCannotCancel, res.Status)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: failed to cancel reservation %s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel: %v", ErrInternal, err)
	}

	res.Status = domain.StatusCancelled
	s.logger.Info("Cancel: reservation %s cancelled", id)

	return res, nil
}

// Delete удаляет бронирование без возможности восстановления
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: failed to delete reservation %s: %v", id, err)
		return fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation %s deleted", id)

	return nil
}

// LiveOccupancy строит снимок занятости зала в момент времени at.
// Занятыми считаются столы с бронированием, чей интервал покрывает at,
// кроме отмененных и неявок.
func (s *Service) LiveOccupancy(ctx context.Context, restaurantID uuid.UUID, at time.Time) (*models.Occupancy, error) {
	day := at
	filter := domain.ReservationsFilter{
		RestaurantID: restaurantID,
		Day:          &day,
	}

	items, err := s.reservationRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("LiveOccupancy: failed to list reservations for restaurant %s: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: LiveOccupancy: %v", ErrInternal, err)
	}

	tables, err := s.tableRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		s.logger.Error("LiveOccupancy: failed to list tables for restaurant %s: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: LiveOccupancy: %v", ErrInternal, err)
	}

	occupied := availability.OccupiedTables(items, at)

	result := &models.Occupancy{
		RestaurantID: restaurantID,
		At:           at,
		Tables:       tables,
	}

	for _, table := range tables {
		if res, ok := occupied[table.ID]; ok {
			result.OccupiedTables = append(result.OccupiedTables, models.OccupiedTable{
				Table:       table,
				Reservation: res,
			})
		}
	}

	return result, nil
}

package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/DS-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/DS-ReservationService/internal/service/tables/models"
)

// Service сервис для управления столами ресторана
type Service struct {
	tableRepo      TableRepository
	restaurantRepo RestaurantRepository
	logger         Logger
}

// NewService создает новый сервис столов
func NewService(tableRepo TableRepository, restaurantRepo RestaurantRepository, logger Logger) *Service {
	return &Service{
		tableRepo:      tableRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// Create создает стол с привязкой координат к сетке плана ресторана
func (s *Service) Create(ctx context.Context, req models.CreateTableRequest) (*domain.Table, error) {
	rest, err := s.getRestaurant(ctx, req.RestaurantID, "Create")
	if err != nil {
		return nil, err
	}

	shape, err := domain.ParseTableShape(req.Shape)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	gridSize := rest.FloorPlan.GridSize
	newTable := &domain.Table{
		ID:           uuid.New(),
		RestaurantID: req.RestaurantID,
		TableNumber:  req.TableNumber,
		Capacity:     req.Capacity,
		Shape:        shape,
		X:            domain.SnapToGrid(req.X, gridSize),
		Y:            domain.SnapToGrid(req.Y, gridSize),
		Rotation:     0,
		Width:        req.Width,
		Height:       req.Height,
		ZoneName:     req.ZoneName,
	}

	if err := newTable.Validate(gridSize); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.tableRepo.Create(ctx, newTable)
	if err != nil {
		s.logger.Error("Create: failed to create table for restaurant %s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: Create: %v", ErrInternal, err)
	}

	s.logger.Info("Create: table %s created for restaurant %s", created.ID, req.RestaurantID)

	return created, nil
}

// GetByID получает стол по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Table, error) {
	result, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, table.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("GetByID: failed to get table %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID: %v", ErrInternal, err)
	}

	return result, nil
}

// List возвращает все столы ресторана в стабильном порядке
func (s *Service) List(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Table, error) {
	items, err := s.tableRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		s.logger.Error("List: failed to list tables for restaurant %s: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}

	return items, nil
}

// Update применяет частичные изменения к столу
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.UpdateTableRequest) (*domain.Table, error) {
	existing, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, table.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: failed to get table %s: %v", id, err)
		return nil, fmt.Errorf("%w: Update: %v", ErrInternal, err)
	}

	rest, err := s.getRestaurant(ctx, existing.RestaurantID, "Update")
	if err != nil {
		return nil, err
	}

	gridSize := rest.FloorPlan.GridSize
	if err := req.ApplyTo(existing, gridSize); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := existing.Validate(gridSize); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.tableRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, table.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: failed to update table %s: %v", id, err)
		return nil, fmt.Errorf("%w: Update: %v", ErrInternal, err)
	}

	return existing, nil
}

// Delete удаляет стол. Прошлые бронирования стола сохраняются.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.tableRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, table.ErrTableNotFound) {
			return ErrTableNotFound
		}
		s.logger.Error("Delete: failed to delete table %s: %v", id, err)
		return fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: table %s deleted", id)

	return nil
}

func (s *Service) getRestaurant(ctx context.Context, restaurantID uuid.UUID, op string) (*domain.Restaurant, error) {
	rest, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, restaurant.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("%s: failed to get restaurant %s: %v", op, restaurantID, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
	return rest, nil
}

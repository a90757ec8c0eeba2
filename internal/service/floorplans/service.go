package floorplans

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/internal/floorplan"
	"github.com/m04kA/DS-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/DS-ReservationService/internal/service/floorplans/models"
)

// Service сервис для загрузки и сохранения плана зала
type Service struct {
	restaurantRepo RestaurantRepository
	tableRepo      TableRepository
	logger         Logger
}

// NewService создает новый сервис планов зала
func NewService(restaurantRepo RestaurantRepository, tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		tableRepo:      tableRepo,
		logger:         logger,
	}
}

// Get возвращает текущий план зала: метаданные канваса и столы ресторана
func (s *Service) Get(ctx context.Context, restaurantID uuid.UUID) (*domain.FloorPlanSnapshot, error) {
	rest, err := s.getRestaurant(ctx, restaurantID, "Get")
	if err != nil {
		return nil, err
	}

	tables, err := s.tableRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		s.logger.Error("Get: failed to list tables for restaurant %s: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Get: %v", ErrInternal, err)
	}

	return &domain.FloorPlanSnapshot{
		RestaurantID: restaurantID,
		Meta:         rest.FloorPlan,
		Tables:       tables,
	}, nil
}

// Save сохраняет план зала: новая геометрия прогоняется через сессию
// редактора (привязка к сетке и ограничение канвасом), затем метаданные
// пишутся на ресторан, а геометрия столов обновляется пакетно. Пакет
// идет без общей транзакции: при частичном отказе возвращается
// ErrPartialSave, успешные записи остаются.
func (s *Service) Save(ctx context.Context, restaurantID uuid.UUID, req models.SaveRequest) (*domain.FloorPlanSnapshot, error) {
	rest, err := s.getRestaurant(ctx, restaurantID, "Save")
	if err != nil {
		return nil, err
	}

	tables, err := s.tableRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		s.logger.Error("Save: failed to list tables for restaurant %s: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Save: %v", ErrInternal, err)
	}

	session := floorplan.NewSession(restaurantID, floorplan.Options{
		GridSize:     rest.FloorPlan.GridSize,
		CanvasWidth:  rest.FloorPlan.CanvasWidth,
		CanvasHeight: rest.FloorPlan.CanvasHeight,
	})
	session.LoadTables(tables)
	session.SetBackgroundImage(req.BackgroundImage)

	known := make(map[uuid.UUID]struct{}, len(tables))
	for _, t := range tables {
		known[t.ID] = struct{}{}
	}

	touched := make(map[uuid.UUID]struct{}, len(req.Tables))
	for _, geom := range req.Tables {
		if _, ok := known[geom.ID]; !ok {
			s.logger.Warn("Save: unknown table %s in floor plan for restaurant %s, skipped", geom.ID, restaurantID)
			continue
		}

		// Геометрия проверяется до любой записи, чтобы кривой запрос
		// не превращался в частичное сохранение
		if geom.Rotation != nil && !domain.IsValidRotation(*geom.Rotation) {
			s.logger.Warn("Save: invalid rotation %d for table %s", *geom.Rotation, geom.ID)
			return nil, fmt.Errorf("%w: table %s: rotation %d", ErrInvalidGeometry, geom.ID, *geom.Rotation)
		}

		session.MoveTable(geom.ID, geom.X, geom.Y)
		session.UpdateTable(geom.ID, floorplan.TableUpdate{
			Rotation: geom.Rotation,
			Width:    geom.Width,
			Height:   geom.Height,
		})
		touched[geom.ID] = struct{}{}
	}

	snapshot := session.Snapshot()
	// Зоны управляются отдельно от редактора, переносим их из текущих метаданных
	snapshot.Meta.Zones = rest.FloorPlan.Zones

	if err := s.restaurantRepo.UpdateFloorPlanMeta(ctx, restaurantID, snapshot.Meta); err != nil {
		if errors.Is(err, restaurant.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Save: failed to update floor plan meta for restaurant %s: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Save: %v", ErrInternal, err)
	}

	var firstErr error
	failed := 0
	for _, t := range snapshot.Tables {
		if _, ok := touched[t.ID]; !ok {
			continue
		}
		if err := s.tableRepo.UpdateGeometry(ctx, restaurantID, t); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			s.logger.Error("Save: failed to update geometry of table %s: %v", t.ID, err)
		}
	}

	if firstErr != nil {
		return &snapshot, fmt.Errorf("%w: %d of %d tables failed: %v", ErrPartialSave, failed, len(touched), firstErr)
	}

	s.logger.Info("Save: floor plan saved for restaurant %s, %d tables updated", restaurantID, len(touched))

	return &snapshot, nil
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

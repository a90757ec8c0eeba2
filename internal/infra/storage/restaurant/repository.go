package restaurant

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DS-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения конфигурации ресторана и сохранения
// метаданных плана зала. Профиль ресторана принадлежит другому сервису,
// здесь используются только поля, нужные движку бронирований.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает конфигурацию ресторана по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"turn_duration_minutes",
		"opening_time",
		"closing_time",
		"floor_plan_json",
		"created_at",
		"updated_at",
	).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var restaurant domain.Restaurant
	var floorPlanJSON []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.TurnDurationMinutes,
		&restaurant.OpeningTime,
		&restaurant.ClosingTime,
		&floorPlanJSON,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan restaurant: %v", ErrScanRow, err)
	}

	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	// Пустой floor_plan_json - ресторан без сохраненного плана зала
	if len(floorPlanJSON) == 0 {
		restaurant.FloorPlan = domain.DefaultFloorPlanMeta()
		return &restaurant, nil
	}

	if err := json.Unmarshal(floorPlanJSON, &restaurant.FloorPlan); err != nil {
		return nil, fmt.Errorf("%w: GetByID - unmarshal floor plan: %v", ErrScanRow, err)
	}

	return &restaurant, nil
}

// UpdateFloorPlanMeta сохраняет метаданные плана зала (канвас, сетку,
// фоновое изображение) одним JSON-документом на ресторане
func (r *Repository) UpdateFloorPlanMeta(ctx context.Context, id uuid.UUID, meta domain.FloorPlanMeta) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("%w: UpdateFloorPlanMeta - marshal floor plan: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("restaurants").
		Set("floor_plan_json", payload).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateFloorPlanMeta - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateFloorPlanMeta - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateFloorPlanMeta - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}

package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DS-ReservationService/pkg/psqlbuilder"
)

var tableColumns = []string{
	"id",
	"restaurant_id",
	"table_number",
	"capacity",
	"shape",
	"x_coord",
	"y_coord",
	"rotation",
	"width",
	"height",
	"zone_name",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со столами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый стол
func (r *Repository) Create(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tables").
		Columns(
			"id",
			"restaurant_id",
			"table_number",
			"capacity",
			"shape",
			"x_coord",
			"y_coord",
			"rotation",
			"width",
			"height",
			"zone_name",
		).
		Values(
			table.ID,
			table.RestaurantID,
			table.TableNumber,
			table.Capacity,
			table.Shape,
			table.X,
			table.Y,
			table.Rotation,
			table.Width,
			table.Height,
			table.ZoneName,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	table.CreatedAt = createdAt.Time
	table.UpdatedAt = updatedAt.Time

	return table, nil
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	table, err := scanTable(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}

	return table, nil
}

// GetByRestaurantID получает все столы ресторана в стабильном порядке
func (r *Repository) GetByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("created_at ASC, table_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByRestaurantID - scan row: %v", ErrScanRow, err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantID - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}

// Update обновляет атрибуты стола
func (r *Repository) Update(ctx context.Context, table *domain.Table) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tables").
		Set("table_number", table.TableNumber).
		Set("capacity", table.Capacity).
		Set("shape", table.Shape).
		Set("x_coord", table.X).
		Set("y_coord", table.Y).
		Set("rotation", table.Rotation).
		Set("width", table.Width).
		Set("height", table.Height).
		Set("zone_name", table.ZoneName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": table.ID}).
		Where(squirrel.Eq{"restaurant_id": table.RestaurantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "Update")
}

// UpdateGeometry обновляет только геометрию стола (позицию, поворот,
// габариты). Используется пакетным сохранением плана зала.
func (r *Repository) UpdateGeometry(ctx context.Context, restaurantID uuid.UUID, table *domain.Table) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tables").
		Set("x_coord", table.X).
		Set("y_coord", table.Y).
		Set("rotation", table.Rotation).
		Set("width", table.Width).
		Set("height", table.Height).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": table.ID}).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateGeometry - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateGeometry - execute update: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "UpdateGeometry")
}

// Delete удаляет стол. Прошлые бронирования сохраняют ссылку на id
// удаленного стола: reservations.table_id без внешнего ключа, поэтому
// удаление не каскадирует и не обнуляет историю.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return requireRowsAffected(result, "Delete")
}

func requireRowsAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrTableNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTable(row rowScanner) (*domain.Table, error) {
	var table domain.Table
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&table.ID,
		&table.RestaurantID,
		&table.TableNumber,
		&table.Capacity,
		&table.Shape,
		&table.X,
		&table.Y,
		&table.Rotation,
		&table.Width,
		&table.Height,
		&table.ZoneName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	table.CreatedAt = createdAt.Time
	table.UpdatedAt = updatedAt.Time

	return &table, nil
}

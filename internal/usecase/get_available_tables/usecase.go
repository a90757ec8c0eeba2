package get_available_tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/availability"
	"github.com/m04kA/DS-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/restaurant"
)

// UseCase use case поиска свободных столов на конкретное время
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	restaurantRepo  RestaurantRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	restaurantRepo RestaurantRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		restaurantRepo:  restaurantRepo,
		logger:          logger,
	}
}

// Execute возвращает столы, которые вмещают partySize гостей и свободны
// в запрошенное время. Результат - снимок без блокировок, окончательная
// проверка доступности выполняется при создании бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTables: restaurant=%s, start=%s, partySize=%d",
		req.RestaurantID, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat), req.PartySize)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTables: validation failed: %v", err)
		return nil, err
	}

	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetAvailableTables: restaurant %s not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetAvailableTables: failed to get restaurant %s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	tables, err := uc.tableRepo.GetByRestaurantID(ctx, req.RestaurantID)
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	day := req.StartTime
	reservations, err := uc.reservationRepo.GetByRestaurantWithFilter(ctx, domain.ReservationsFilter{
		RestaurantID: req.RestaurantID,
		Day:          &day,
	})
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	available := availability.GetAvailableTables(
		tables, req.StartTime, req.PartySize, reservations, restaurant.BaseTurnover())

	return &Response{
		RestaurantID: req.RestaurantID,
		StartTime:    req.StartTime,
		PartySize:    req.PartySize,
		Tables:       available,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID == uuid.Nil {
		return fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}
	return nil
}

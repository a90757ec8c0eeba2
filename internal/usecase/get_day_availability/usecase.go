package get_day_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/availability"
	"github.com/m04kA/DS-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/restaurant"
)

// UseCase use case расчета доступности на день
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

// Execute рассчитывает доступность слотов ресторана на день для заданного
// количества гостей. Чтение идет без транзакции: результат - снимок на
// момент запроса, он устаревает с каждым новым бронированием.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayAvailability: restaurant=%s, date=%s, partySize=%d",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.PartySize)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayAvailability: validation failed: %v", err)
		return nil, err
	}

	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("GetDayAvailability: restaurant %s not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetDayAvailability: failed to get restaurant %s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	tables, err := uc.tableRepo.GetByRestaurantID(ctx, req.RestaurantID)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	day := req.Date
	reservations, err := uc.reservationRepo.GetByRestaurantWithFilter(ctx, domain.ReservationsFilter{
		RestaurantID: req.RestaurantID,
		Day:          &day,
	})
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	opening, closing := restaurant.Hours()
	opts := availability.Options{
		OpeningTime:         opening,
		ClosingTime:         closing,
		BaseTurnoverMinutes: restaurant.BaseTurnover(),
	}

	slots := availability.DayAvailability(req.Date, tables, reservations, req.PartySize, opts)

	resp := &Response{
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		PartySize:    req.PartySize,
		Slots:        make([]Slot, len(slots)),
	}

	for i, slot := range slots {
		resp.Slots[i] = Slot{
			Time:            slot.Time,
			Available:       slot.Available,
			TablesAvailable: slot.TablesAvailable,
		}
		if slot.Available && resp.NextAvailable == nil {
			t := slot.Time
			resp.NextAvailable = &t
		}
	}

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID == uuid.Nil {
		return fmt.Errorf("%w: restaurantID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}
	return nil
}

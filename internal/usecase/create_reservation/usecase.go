package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/availability"
	"github.com/m04kA/DS-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/table"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	restaurantRepo  RestaurantRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		restaurantRepo:  restaurantRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности стола и вставка идут в одной сериализуемой
// транзакции, чтобы два одновременных запроса не заняли один стол.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: restaurant=%s, guests=%d, start=%s",
		req.RestaurantID, req.GuestCount, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateStartTime(req.StartTime, now); err != nil {
		uc.logger.Warn("CreateReservation: start time %s is in the past", req.StartTime)
		return nil, err
	}

	// 2. Получаем конфигурацию ресторана
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateReservation: restaurant %s not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateReservation: failed to get restaurant %s: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 3. Проверяем часы работы
	opening, closing := restaurant.Hours()
	if err := validateOpeningHours(req.StartTime, opening, closing); err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}

	baseTurnover := restaurant.BaseTurnover()

	// 4. Проверяем стол, если он выбран
	if req.TableID != nil {
		table, err := uc.tableRepo.GetByID(ctx, *req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				uc.logger.Warn("CreateReservation: table %s not found", *req.TableID)
				return nil, ErrTableNotFound
			}
			uc.logger.Error("CreateReservation: failed to get table %s: %v", *req.TableID, err)
			return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}
		if table.RestaurantID != req.RestaurantID {
			uc.logger.Warn("CreateReservation: table %s belongs to another restaurant", *req.TableID)
			return nil, ErrTableNotFound
		}
		if table.Capacity < req.GuestCount {
			uc.logger.Warn("CreateReservation: table %s capacity %d < party size %d",
				*req.TableID, table.Capacity, req.GuestCount)
			return nil, ErrTableTooSmall
		}
	}

	var result *domain.Reservation

	// 5. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Бронирования дня с блокировкой (FOR UPDATE)
		day := req.StartTime
		filter := domain.ReservationsFilter{
			RestaurantID: req.RestaurantID,
			Day:          &day,
		}

		reservations, err := uc.reservationRepo.GetByRestaurantWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.2. Проверяем доступность стола
		if req.TableID != nil {
			if !availability.IsTableAvailable(*req.TableID, req.StartTime, req.GuestCount, reservations, baseTurnover) {
				uc.logger.Warn("CreateReservation: table %s is not available at %s",
					*req.TableID, req.StartTime.Format(domain.TimeFormat))
				return ErrTableNotAvailable
			}
		}

		// 5.3. Создаем бронирование со статусом pending и расчетным временем окончания
		reservation := &domain.Reservation{
			ID:           uuid.New(),
			RestaurantID: req.RestaurantID,
			TableID:      req.TableID,
			UserID:       req.UserID,
			GuestCount:   req.GuestCount,
			StartTime:    req.StartTime,
			EndTime:      domain.ReservationEnd(req.StartTime, req.GuestCount, baseTurnover),
			Status:       domain.StatusPending,
			GuestName:    req.GuestName,
			GuestPhone:   req.GuestPhone,
			GuestNotes:   req.GuestNotes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation %s", result.ID)

	return toResponse(result), nil
}

func toResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		TableID:      r.TableID,
		UserID:       r.UserID,
		GuestCount:   r.GuestCount,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Status:       string(r.Status),
		GuestName:    r.GuestName,
		GuestPhone:   r.GuestPhone,
		GuestNotes:   r.GuestNotes,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DS-ReservationService/internal/availability"
	"github.com/m04kA/DS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/reservation"
	restaurantRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/m04kA/DS-ReservationService/internal/infra/storage/table"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	restaurantRepo  RestaurantRepository
	txManager       TransactionManager
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
		logger:          logger,
	}
}

// Execute выполняет use case изменения бронирования.
// При смене времени начала или количества гостей время окончания
// пересчитывается по turnover ресторана. Проверка конфликтов и запись
// идут в одной сериализуемой транзакции, само бронирование из проверки
// исключается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: reservation=%s", req.ReservationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	reservation, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation %s not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get reservation %s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 3. Проверяем, что статус допускает редактирование
	if err := validateEditable(reservation.Status); err != nil {
		uc.logger.Warn("UpdateReservation: reservation %s is not editable, status=%s",
			req.ReservationID, reservation.Status)
		return nil, err
	}

	// 4. Получаем конфигурацию ресторана
	restaurant, err := uc.restaurantRepo.GetByID(ctx, reservation.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get restaurant %s: %v", reservation.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	baseTurnover := restaurant.BaseTurnover()

	// 5. Накладываем изменения
	if req.TableID != nil {
		reservation.TableID = req.TableID
	}
	if req.GuestCount != nil {
		reservation.GuestCount = *req.GuestCount
	}
	if req.StartTime != nil {
		reservation.StartTime = *req.StartTime
	}
	if req.GuestName != nil {
		reservation.GuestName = req.GuestName
	}
	if req.GuestPhone != nil {
		reservation.GuestPhone = req.GuestPhone
	}
	if req.GuestNotes != nil {
		reservation.GuestNotes = req.GuestNotes
	}

	// Время окончания всегда выводится заново из времени начала и
	// количества гостей
	reservation.EndTime = domain.ReservationEnd(reservation.StartTime, reservation.GuestCount, baseTurnover)

	// 6. Проверяем часы работы для нового времени
	if req.StartTime != nil {
		opening, closing := restaurant.Hours()
		if err := validateOpeningHours(reservation.StartTime, opening, closing); err != nil {
			uc.logger.Warn("UpdateReservation: %v", err)
			return nil, err
		}
	}

	// 7. Проверяем стол, если он назначен
	if reservation.TableID != nil {
		table, err := uc.tableRepo.GetByID(ctx, *reservation.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				uc.logger.Warn("UpdateReservation: table %s not found", *reservation.TableID)
				return nil, ErrTableNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get table %s: %v", *reservation.TableID, err)
			return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}
		if table.RestaurantID != reservation.RestaurantID {
			uc.logger.Warn("UpdateReservation: table %s belongs to another restaurant", *reservation.TableID)
			return nil, ErrTableNotFound
		}
		if table.Capacity < reservation.GuestCount {
			uc.logger.Warn("UpdateReservation: table %s capacity %d < party size %d",
				*reservation.TableID, table.Capacity, reservation.GuestCount)
			return nil, ErrTableTooSmall
		}
	}

	// 8. Проверка конфликтов и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if reservation.TableID != nil {
			day := reservation.StartTime
			filter := domain.ReservationsFilter{
				RestaurantID: reservation.RestaurantID,
				Day:          &day,
			}

			reservations, err := uc.reservationRepo.GetByRestaurantWithFilter(txCtx, filter)
			if err != nil {
				uc.logger.Error("UpdateReservation: failed to get reservations: %v", err)
				return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
			}

			conflict := availability.HasReservationConflict(
				*reservation.TableID,
				reservation.StartTime,
				reservation.GuestCount,
				reservations,
				baseTurnover,
				reservation.ID,
			)
			if conflict {
				uc.logger.Warn("UpdateReservation: table %s is not available at %s",
					*reservation.TableID, reservation.StartTime.Format(domain.TimeFormat))
				return ErrTableNotAvailable
			}
		}

		if err := uc.reservationRepo.Update(txCtx, reservation); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to update reservation %s: %v", reservation.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation %s", reservation.ID)

	return &Response{
		ID:           reservation.ID,
		RestaurantID: reservation.RestaurantID,
		TableID:      reservation.TableID,
		UserID:       reservation.UserID,
		GuestCount:   reservation.GuestCount,
		StartTime:    reservation.StartTime,
		EndTime:      reservation.EndTime,
		Status:       string(reservation.Status),
		GuestName:    reservation.GuestName,
		GuestPhone:   reservation.GuestPhone,
		GuestNotes:   reservation.GuestNotes,
		CreatedAt:    reservation.CreatedAt,
		UpdatedAt:    reservation.UpdatedAt,
	}, nil
}

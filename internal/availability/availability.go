// Package availability реализует чистый движок доступности столов:
// поиск конфликтов бронирований по пересечению интервалов занятости,
// фильтрацию столов по вместимости и расчет занятости на момент времени.
//
// Движок stateless: он работает над снимком бронирований, переданным
// аргументом, и сам не обращается к хранилищу. Защиту от гонки двух
// одновременных запросов на один стол обеспечивает вызывающая сторона
// (сериализуемая транзакция на границе персистентности).
package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DS-ReservationService/internal/domain"
)

// IsTableAvailable проверяет, свободен ли стол в запрошенное время.
// Интервал занятости кандидата [start, start+turnover(partySize)) сравнивается
// с интервалом каждого существующего бронирования этого стола, вычисленным
// по количеству гостей самого бронирования. Отмененные бронирования слот
// не блокируют; no_show блокирует, пока персонал явно не отменит его.
func IsTableAvailable(
	tableID uuid.UUID,
	requestedStart time.Time,
	partySize int,
	reservations []*domain.Reservation,
	baseTurnoverMinutes int,
) bool {
	requestedEnd := domain.ReservationEnd(requestedStart, partySize, baseTurnoverMinutes)
	return !hasConflict(tableID, requestedStart, requestedEnd, reservations, baseTurnoverMinutes, uuid.Nil)
}

// GetAvailableTables возвращает столы, которые вмещают partySize гостей
// и свободны в запрошенное время. Порядок входного списка сохраняется.
func GetAvailableTables(
	tables []*domain.Table,
	requestedStart time.Time,
	partySize int,
	reservations []*domain.Reservation,
	baseTurnoverMinutes int,
) []*domain.Table {
	available := make([]*domain.Table, 0, len(tables))
	for _, table := range tables {
		if table.Capacity < partySize {
			continue
		}
		if IsTableAvailable(table.ID, requestedStart, partySize, reservations, baseTurnoverMinutes) {
			available = append(available, table)
		}
	}
	return available
}

// HasReservationConflict проверяет конфликт для редактирования существующего
// бронирования: само редактируемое бронирование исключается из проверки по ID.
func HasReservationConflict(
	tableID uuid.UUID,
	requestedStart time.Time,
	partySize int,
	reservations []*domain.Reservation,
	baseTurnoverMinutes int,
	excludeReservationID uuid.UUID,
) bool {
	requestedEnd := domain.ReservationEnd(requestedStart, partySize, baseTurnoverMinutes)
	return hasConflict(tableID, requestedStart, requestedEnd, reservations, baseTurnoverMinutes, excludeReservationID)
}

// OccupiedTables возвращает занятость столов на момент времени at для
// floor-plan overlay: стол занят бронированием, чей интервал [start, end)
// содержит at и чей статус не cancelled и не no_show.
func OccupiedTables(reservations []*domain.Reservation, at time.Time) map[uuid.UUID]*domain.Reservation {
	occupied := make(map[uuid.UUID]*domain.Reservation)
	for _, r := range reservations {
		if r.TableID == nil {
			continue
		}
		if r.OccupiesAt(at) {
			occupied[*r.TableID] = r
		}
	}
	return occupied
}

func hasConflict(
	tableID uuid.UUID,
	requestedStart, requestedEnd time.Time,
	reservations []*domain.Reservation,
	baseTurnoverMinutes int,
	excludeReservationID uuid.UUID,
) bool {
	for _, r := range reservations {
		if excludeReservationID != uuid.Nil && r.ID == excludeReservationID {
			continue
		}
		if r.TableID == nil || *r.TableID != tableID {
			continue
		}
		if !r.Blocks() {
			continue
		}

		// Интервал занятости существующего бронирования считается по его
		// собственному количеству гостей
		reservationEnd := domain.ReservationEnd(r.StartTime, r.GuestCount, baseTurnoverMinutes)

		if intervalsOverlap(requestedStart, requestedEnd, r.StartTime, reservationEnd) {
			return true
		}
	}
	return false
}

// intervalsOverlap проверяет пересечение полуоткрытых интервалов [a1,a2) и
// [b1,b2): пересечение есть тогда и только тогда, когда a1 < b2 && b1 < a2.
// Строгие неравенства: бронирование, начинающееся ровно в момент окончания
// другого, конфликтом не считается.
func intervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("update_reservation: restaurant not found")

	// ErrTableNotFound возвращается, когда стол не найден в ресторане
	ErrTableNotFound = errors.New("update_reservation: table not found")

	// ErrTableTooSmall возвращается, когда вместимость стола меньше количества гостей
	ErrTableTooSmall = errors.New("update_reservation: table capacity is less than party size")

	// ErrTableNotAvailable возвращается, когда стол занят в новое время
	ErrTableNotAvailable = errors.New("update_reservation: table is not available at this time")

	// ErrNotEditable возвращается при попытке изменить бронирование
	// в статусе, не допускающем редактирование
	ErrNotEditable = errors.New("update_reservation: reservation is not editable in its current status")

	// ErrOutsideOpeningHours возвращается, когда время вне часов работы ресторана
	ErrOutsideOpeningHours = errors.New("update_reservation: start time is outside opening hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)

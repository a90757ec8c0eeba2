package create_reservation

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("create_reservation: restaurant not found")

	// ErrTableNotFound возвращается, когда стол не найден в ресторане
	ErrTableNotFound = errors.New("create_reservation: table not found")

	// ErrTableTooSmall возвращается, когда вместимость стола меньше количества гостей
	ErrTableTooSmall = errors.New("create_reservation: table capacity is less than party size")

	// ErrTableNotAvailable возвращается, когда стол занят в запрошенное время
	ErrTableNotAvailable = errors.New("create_reservation: table is not available at this time")

	// ErrInvalidDate возвращается при попытке забронировать время в прошлом
	ErrInvalidDate = errors.New("create_reservation: start time is in the past")

	// ErrOutsideOpeningHours возвращается, когда время вне часов работы ресторана
	ErrOutsideOpeningHours = errors.New("create_reservation: start time is outside opening hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

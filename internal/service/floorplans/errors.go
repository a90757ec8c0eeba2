package floorplans

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrInvalidGeometry возвращается при недопустимой геометрии стола
	// в запросе (например, угол поворота вне 0/90/180/270)
	ErrInvalidGeometry = errors.New("invalid table geometry")

	// ErrPartialSave возвращается, когда часть столов не удалось сохранить.
	// Сохранение пакетное без общей транзакции: успешные записи остаются.
	ErrPartialSave = errors.New("floor plan saved partially")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

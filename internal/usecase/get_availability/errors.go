package get_availability

import "errors"

var (
	// ErrCafeNotFound возвращается, когда кафе не найдено по ссылке
	ErrCafeNotFound = errors.New("get_availability: cafe not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")
)

package create_booking

import (
	"errors"

	"github.com/GCN-Platform/GCN-BookingService/internal/usecase/check_capacity"
)

var (
	// ErrCafeNotFound возвращается, когда кафе не найдено
	ErrCafeNotFound = errors.New("create_booking: cafe not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrTooLateToBook возвращается, когда старт нарушает минимальное
	// время предуведомления
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrCapacityExceeded возвращается, когда корзина не помещается
	// в свободный остаток; детали - в CapacityError
	ErrCapacityExceeded = errors.New("create_booking: capacity exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// CapacityError несёт структурированный отказ валидатора вместимости.
// Разворачивается в ErrCapacityExceeded, чтобы обработчики матчились
// через errors.Is, а сообщение доставали через errors.As.
type CapacityError struct {
	Rejection *check_capacity.Rejection
}

func (e *CapacityError) Error() string {
	return e.Rejection.Message
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

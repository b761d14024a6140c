package check_capacity

import (
	"time"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

// Request модель запроса на проверку вместимости
type Request struct {
	CafeRef         string               // Ссылка на кафе: числовой ID или slug
	Date            time.Time            // Дата бронирования (без времени)
	StartTime       types.TimeString     // Время начала
	DurationMinutes int                  // Длительность нового бронирования
	Lines           []domain.BookingLine // Корзина: (тип ресурса, количество)
}

// Result результат проверки: либо принято, либо отказ с причиной
type Result struct {
	OK        bool
	Rejection *Rejection
}

// Rejection структурированная причина отказа: машинный код с параметрами
// плюс готовое сообщение для показа пользователю
type Rejection struct {
	Code         Code
	ResourceType domain.ResourceType // заполнен для capacity_exceeded / unknown_resource
	Remaining    int                 // свободный остаток для capacity_exceeded
	Message      string
}

// Accepted результат успешной проверки
func Accepted() *Result {
	return &Result{OK: true}
}

// Rejected результат отказа
func Rejected(rej *Rejection) *Result {
	return &Result{OK: false, Rejection: rej}
}

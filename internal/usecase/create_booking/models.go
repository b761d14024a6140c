package create_booking

import (
	"time"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64                // ID пользователя (из контекста авторизации)
	CafeRef         string               // Ссылка на кафе: числовой ID или slug
	Date            time.Time            // Дата бронирования (без времени)
	StartTime       types.TimeString     // Время начала
	DurationMinutes int                  // Длительность в минутах
	Lines           []domain.BookingLine // Корзина: тип ресурса + количество
	Notes           string               // Комментарий пользователя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}

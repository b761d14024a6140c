package get_availability

import (
	"context"
	"time"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
)

// CafeRepository интерфейс репозитория кафе
type CafeRepository interface {
	// Resolve разрешает ссылку на кафе (числовой ID или slug) в запись кафе
	Resolve(ctx context.Context, ref string) (*domain.Cafe, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByCafeAndDate получает все не-отменённые бронирования кафе на дату
	GetByCafeAndDate(ctx context.Context, cafeID int64, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package bookings

import (
	"context"

	"github.com/GCN-Platform/GCN-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByCafeWithFilter(ctx context.Context, filter domain.CafeBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// CafeRepository интерфейс репозитория кафе
type CafeRepository interface {
	Resolve(ctx context.Context, ref string) (*domain.Cafe, error)
	GetByID(ctx context.Context, id int64) (*domain.Cafe, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

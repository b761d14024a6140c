package get_cafe_bookings

import (
	"context"

	"github.com/GCN-Platform/GCN-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetCafeBookings(ctx context.Context, req *models.GetCafeBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

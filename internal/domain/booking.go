package domain

import (
	"time"

	"github.com/GCN-Platform/GCN-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending         BookingStatus = "pending"
	StatusConfirmed       BookingStatus = "confirmed"
	StatusCompleted       BookingStatus = "completed"
	StatusCancelledByUser BookingStatus = "cancelled_by_user"
	StatusCancelledByCafe BookingStatus = "cancelled_by_cafe"
	StatusNoShow          BookingStatus = "no_show"
)

// Booking represents a reservation at one cafe for one calendar date,
// one start time and one duration, holding line items per resource type
type Booking struct {
	ID              int64
	UserID          int64
	CafeID          int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus
	Lines           []BookingLine

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingLine is a (resource type, quantity) pair belonging to one booking.
// Quantity is a positive integer.
type BookingLine struct {
	ResourceType ResourceType
	Quantity     int
}

// IsActive returns true if the booking counts toward capacity accounting.
// Cancelled and no-show bookings never occupy resources.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByCafe &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByCafe
}

// EndTime returns the wall-clock end of the booking (wraps past midnight
// for display purposes, the date boundary itself is not tracked)
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// QuantityOf returns the total quantity booked for the resource type
func (b *Booking) QuantityOf(rt ResourceType) int {
	total := 0
	for _, line := range b.Lines {
		if line.ResourceType == rt {
			total += line.Quantity
		}
	}
	return total
}

// CafeBookingsFilter фильтр для получения бронирований кафе
type CafeBookingsFilter struct {
	CafeID          int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}
